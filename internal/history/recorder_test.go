package history

import (
	"strings"
	"testing"
	"time"
)

func TestRecorderAppendAndReset(t *testing.T) {
	r := NewRecorder()
	if r.Len() != 0 {
		t.Errorf("new recorder has %d samples", r.Len())
	}

	r.Append(time.Second, 100, 5)
	r.Append(2*time.Second, 90, 7)

	if r.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", r.Len())
	}
	s := r.Samples()
	if s[0].T != time.Second || s[0].Altitude != 100 || s[0].Speed != 5 {
		t.Errorf("first sample = %+v", s[0])
	}
	if s[1].Altitude != 90 {
		t.Errorf("second sample = %+v", s[1])
	}

	r.Reset()
	if r.Len() != 0 {
		t.Errorf("Len() after Reset = %d", r.Len())
	}
}

func TestRenderAltitudeDimensions(t *testing.T) {
	r := NewRecorder()
	for i := 0; i < 50; i++ {
		r.Append(time.Duration(i)*time.Second, float64(100-2*i), 2)
	}

	rows := RenderAltitude(r.Samples(), 40, 10)
	if len(rows) != 10 {
		t.Fatalf("got %d rows, expected 10", len(rows))
	}
	for i, row := range rows {
		if len([]rune(row)) != 40 {
			t.Errorf("row %d has width %d, expected 40", i, len([]rune(row)))
		}
	}
}

func TestRenderAltitudeShape(t *testing.T) {
	// A strictly descending altitude trace starts at the top-left and ends
	// at the bottom-right.
	r := NewRecorder()
	for i := 0; i <= 100; i++ {
		r.Append(time.Duration(i)*time.Second, float64(100-i), 1)
	}

	rows := RenderAltitude(r.Samples(), 20, 8)
	if []rune(rows[0])[0] != '·' {
		t.Error("highest sample should mark the top-left of the chart")
	}
	last := []rune(rows[len(rows)-1])
	if last[len(last)-1] != '·' {
		t.Error("final sample should mark the bottom-right of the chart")
	}

	// Each column carries exactly one mark.
	for x := 0; x < 20; x++ {
		marks := 0
		for y := 0; y < 8; y++ {
			if []rune(rows[y])[x] == '·' {
				marks++
			}
		}
		if marks != 1 {
			t.Errorf("column %d has %d marks, expected 1", x, marks)
		}
	}
}

func TestRenderAltitudeEmpty(t *testing.T) {
	rows := RenderAltitude(nil, 10, 4)
	if len(rows) != 4 {
		t.Fatalf("got %d rows, expected 4", len(rows))
	}
	for _, row := range rows {
		if strings.TrimSpace(row) != "" {
			t.Error("empty history should render blank rows")
		}
	}

	if RenderAltitude(nil, 0, 4) != nil {
		t.Error("zero width should render nothing")
	}
}

func TestMaxSpeed(t *testing.T) {
	r := NewRecorder()
	if MaxSpeed(r.Samples()) != 0 {
		t.Error("MaxSpeed of empty history should be 0")
	}
	r.Append(0, 100, 3)
	r.Append(time.Second, 90, 8)
	r.Append(2*time.Second, 80, 5)
	if MaxSpeed(r.Samples()) != 8 {
		t.Errorf("MaxSpeed = %v, expected 8", MaxSpeed(r.Samples()))
	}
}
