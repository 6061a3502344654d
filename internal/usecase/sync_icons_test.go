package usecase

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/intrale/brandkit/internal/domain"
)

type memPack struct {
	files map[string]string
	order []string
	err   error
}

func (p memPack) ListSources() ([]string, error) { return p.order, p.err }

func (p memPack) ReadSource(rel string) ([]byte, error) {
	v, ok := p.files[rel]
	if !ok {
		return nil, errors.New("missing " + rel)
	}
	return []byte(v), nil
}

type memWriter struct {
	files map[string][]byte
}

func (w *memWriter) WriteIfChanged(rel string, data []byte) (bool, error) {
	if old, ok := w.files[rel]; ok && bytes.Equal(old, data) {
		return false, nil
	}
	w.files[rel] = append([]byte(nil), data...)
	return true, nil
}

func encoded(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s)) + "\n"
}

func TestSyncIcons_Execute(t *testing.T) {
	pack := memPack{
		files: map[string]string{
			"ios/a.png.b64": encoded("png-a"),
			"ios/b.png.b64": encoded("png-b"),
		},
		order: []string{"ios/a.png.b64", "ios/b.png.b64"},
	}
	w := &memWriter{files: map[string][]byte{"ios/b.png": []byte("png-b")}}

	results, err := NewSyncIcons(pack, w).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if !results[0].Changed || results[0].Target != "ios/a.png" {
		t.Fatalf("expected a.png written, got %+v", results[0])
	}
	if results[1].Changed {
		t.Fatalf("expected b.png unchanged, got %+v", results[1])
	}
	if string(w.files["ios/a.png"]) != "png-a" {
		t.Fatalf("unexpected decoded bytes %q", w.files["ios/a.png"])
	}

	again, err := NewSyncIcons(pack, w).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if countChanged(again) != 0 {
		t.Fatalf("expected second sync to change nothing")
	}
}

func TestSyncIcons_InvalidBase64(t *testing.T) {
	pack := memPack{
		files: map[string]string{"bad.png.b64": "%%%not-base64"},
		order: []string{"bad.png.b64"},
	}
	_, err := NewSyncIcons(pack, &memWriter{files: map[string][]byte{}}).Execute(context.Background())
	if !domain.IsKind(err, domain.KindInvalidFormat) {
		t.Fatalf("expected invalid format, got %v", err)
	}
}

func TestSyncIcons_PackError(t *testing.T) {
	packErr := &domain.OpError{Op: "iconfs.list", Kind: domain.KindNotFound, Err: domain.ErrNotFound}
	_, err := NewSyncIcons(memPack{err: packErr}, &memWriter{}).Execute(context.Background())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSyncIcons_EmptyPack(t *testing.T) {
	results, err := NewSyncIcons(memPack{}, &memWriter{}).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected no results")
	}
}
