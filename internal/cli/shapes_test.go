package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/wordcloud/pkg/cloud/shape"
)

func TestWriteShapes(t *testing.T) {
	var buf bytes.Buffer
	if err := writeShapes(&buf); err != nil {
		t.Fatalf("writeShapes() error: %v", err)
	}
	out := buf.String()
	for _, name := range shape.Names() {
		if !strings.Contains(out, name) {
			t.Errorf("shape %q missing from output", name)
		}
	}
	if !strings.Contains(out, "sampled") || !strings.Contains(out, "analytic") {
		t.Error("output should show both shape kinds")
	}
}
