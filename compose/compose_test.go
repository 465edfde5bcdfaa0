package compose

import (
	"testing"

	"mbx/mexpr"
)

func TestOutputName(t *testing.T) {
	tests := []struct {
		name string
		doc  *mexpr.Document
		src  string
		want string
	}{
		{"from_title", &mexpr.Document{ID: "id-1", Title: "Wide Hat Over X"}, "/tmp/a.xml", "wide-hat-over-x"},
		{"title_slugified", &mexpr.Document{ID: "id-2", Title: "f'(x)!"}, "/tmp/a.xml", "f-x"},
		{"from_file_name", &mexpr.Document{ID: "id-3"}, "/tmp/Test Expression.xml", "test-expression"},
		{"from_id", &mexpr.Document{ID: "id-4"}, "/tmp/!!!.xml", "id-4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outputName(tt.doc, tt.src); got != tt.want {
				t.Errorf("outputName = %q, want %q", got, tt.want)
			}
		})
	}
}
