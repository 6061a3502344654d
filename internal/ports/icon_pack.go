package ports

// IconPack exposes the text-encoded icon sources.
type IconPack interface {
	// ListSources returns source paths relative to the pack, sorted.
	ListSources() ([]string, error)
	ReadSource(rel string) ([]byte, error)
}

// IconWriter materializes decoded icons under the workspace root.
type IconWriter interface {
	// WriteIfChanged writes data to rel unless the file already holds exactly data.
	WriteIfChanged(rel string, data []byte) (changed bool, err error)
}

