package ports

// WorkspaceInitializer scaffolds a brandkit workspace.
type WorkspaceInitializer interface {
	Init(root string, force bool) error
}
