package output

import (
	"bytes"
	"context"
	"os"
	"testing"
)

func TestFromContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if got := FromContext(WithPrinter(context.Background(), &buf)).Writer(); got != &buf {
		t.Error("Writer() should return the writer passed to WithPrinter")
	}
	if got := FromContext(context.Background()).Writer(); got != os.Stdout {
		t.Error("Writer() should default to os.Stdout")
	}
}

func TestPrinter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		print func(p *Printer)
		want  string
	}{
		{"print", func(p *Printer) { p.Print("a", "b") }, "ab"},
		{"printf", func(p *Printer) { p.Printf("%d commands", 3) }, "3 commands"},
		{"println", func(p *Printer) { p.Println("deploy") }, "deploy\n"},
		{"success is plain on a buffer", func(p *Printer) { p.Success("Added command %q", "deploy") }, "Added command \"deploy\"\n"},
		{"notice is plain on a buffer", func(p *Printer) { p.Notice("Cancelled") }, "Cancelled\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			tt.print(New(&buf))
			if got := buf.String(); got != tt.want {
				t.Errorf("wrote %q, want %q", got, tt.want)
			}
		})
	}
}
