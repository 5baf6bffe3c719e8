package input

import (
	"testing"
	"time"
)

func TestDoubleClick(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	a := Ref{Kind: TargetPilot, ID: 1}
	b := Ref{Kind: TargetPlanet, ID: 1}

	tests := []struct {
		name   string
		clicks []Ref
		after  time.Duration
		probe  Ref
		exists bool
		want   bool
	}{
		{"no previous click", nil, 0, a, true, false},
		{"same entity in time", []Ref{a}, 100 * time.Millisecond, a, true, true},
		{"at the threshold", []Ref{a}, 500 * time.Millisecond, a, true, true},
		{"too slow", []Ref{a}, 501 * time.Millisecond, a, true, false},
		{"same id other kind", []Ref{a}, 0, b, true, false},
		{"latest click wins", []Ref{a, b}, 0, a, true, false},
		{"entity gone", []Ref{a}, 0, a, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &DoubleClick{Threshold: 500 * time.Millisecond}
			for _, r := range tt.clicks {
				d.Clicked(r, base)
			}
			exists := func(Ref) bool { return tt.exists }
			if got := d.IsDouble(tt.probe, base.Add(tt.after), exists); got != tt.want {
				t.Errorf("IsDouble() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDoubleClickDisabled(t *testing.T) {
	d := &DoubleClick{}
	ref := Ref{Kind: TargetJump, ID: 3}
	if !d.IsDouble(ref, time.Now(), nil) {
		t.Error("zero threshold should always double-click")
	}
	d.Clicked(ref, time.Now())
	if d.valid {
		t.Error("zero threshold should not remember clicks")
	}
}

func TestDoubleClickForgetOtherRef(t *testing.T) {
	now := time.Now()
	d := &DoubleClick{Threshold: time.Second}
	kept := Ref{Kind: TargetPilot, ID: 2}
	d.Clicked(kept, now)
	d.Forget(Ref{Kind: TargetPilot, ID: 3})
	if !d.IsDouble(kept, now, nil) {
		t.Error("forgetting another entity dropped the remembered one")
	}
	d.Forget(kept)
	if d.IsDouble(kept, now, nil) {
		t.Error("forgotten entity still double-clicks")
	}
}
