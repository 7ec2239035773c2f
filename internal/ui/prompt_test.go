package ui

import (
	"io"
	"strings"
	"testing"

	"velocimetry-platform/internal/models"
)

func TestPrompter_FloatRetriesBadInput(t *testing.T) {
	in := strings.NewReader("abc\n\n3.14\n")
	var out strings.Builder
	p := NewPrompter(in, &out)

	v, err := p.Float("value")
	if err != nil {
		t.Fatalf("Float() failed: %v", err)
	}
	if v != 3.14 {
		t.Errorf("Float() = %v, want 3.14", v)
	}
	if !strings.Contains(out.String(), "invalid number") {
		t.Error("expected a retry message for unparseable input")
	}
}

func TestPrompter_PositiveFloatRejectsZero(t *testing.T) {
	in := strings.NewReader("0\n-2\n1.5\n")
	var out strings.Builder
	p := NewPrompter(in, &out)

	v, err := p.PositiveFloat("flow")
	if err != nil {
		t.Fatalf("PositiveFloat() failed: %v", err)
	}
	if v != 1.5 {
		t.Errorf("PositiveFloat() = %v, want 1.5", v)
	}
}

func TestPrompter_FloatEOF(t *testing.T) {
	p := NewPrompter(strings.NewReader(""), io.Discard)
	if _, err := p.Float("value"); err != io.EOF {
		t.Errorf("Float() error = %v, want io.EOF", err)
	}
}

func TestPrompter_Unit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  models.FlowUnit
	}{
		{name: "by menu number", input: "1\n", want: models.CubicMetersPerHour},
		{name: "by label", input: "GPM\n", want: models.GallonsPerMinute},
		{name: "retry then label", input: "99\nL/s\n", want: models.LitersPerSecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPrompter(strings.NewReader(tt.input), io.Discard)
			u, err := p.Unit("unit")
			if err != nil {
				t.Fatalf("Unit() failed: %v", err)
			}
			if u != tt.want {
				t.Errorf("Unit() = %v, want %v", u, tt.want)
			}
		})
	}
}

func TestPrompter_PipeSpecRetriesInvalidGeometry(t *testing.T) {
	// First attempt: wall leaves no inner diameter. Second attempt valid.
	in := strings.NewReader("100\n50\n114.3\n6.02\n")
	var out strings.Builder
	p := NewPrompter(in, &out)

	pipe, err := p.PipeSpec()
	if err != nil {
		t.Fatalf("PipeSpec() failed: %v", err)
	}
	if pipe.OuterDiameterMM != 114.3 || pipe.WallThicknessMM != 6.02 {
		t.Errorf("PipeSpec() = %+v, want 114.3/6.02", pipe)
	}
	if !strings.Contains(out.String(), "try again") {
		t.Error("expected a retry message for invalid geometry")
	}
}
