package manifest

import (
	"testing"

	"slate/internal/assets"
)

func TestAssignVisualsEmptyBucket(t *testing.T) {
	got := AssignVisuals(0, 20, assets.Bucket{}, nil, DefaultProfile())
	if len(got) != 0 {
		t.Fatalf("expected no visuals, got %v", got)
	}
}

func TestAssignVisualsBackgroundFallback(t *testing.T) {
	got := AssignVisuals(0, 8, assets.Bucket{}, []string{"assets/backgrounds/bg.jpg"}, DefaultProfile())
	if len(got) != 2 {
		t.Fatalf("expected 2 slices, got %v", got)
	}
	for _, v := range got {
		if v.Type != VisualBackground || v.File != "assets/backgrounds/bg.jpg" {
			t.Errorf("unexpected fallback visual: %+v", v)
		}
	}
}

func TestAssignVisualsRoundRobinAndOrdering(t *testing.T) {
	bucket := assets.Bucket{
		Amazon: []string{"a1.png", "a2.png"},
		Dzine:  []string{"d1.png"},
	}
	got := AssignVisuals(10, 20, bucket, nil, DefaultProfile())
	if len(got) != 5 {
		t.Fatalf("expected 5 slices for 20s at 4s each, got %d", len(got))
	}
	wantFiles := []string{"a1.png", "a2.png", "d1.png", "a1.png", "a2.png"}
	for i, v := range got {
		if v.File != wantFiles[i] {
			t.Errorf("slice %d file = %q, want %q", i, v.File, wantFiles[i])
		}
		if v.StartS != 10+float64(i)*4 {
			t.Errorf("slice %d start = %v", i, v.StartS)
		}
	}
}

func TestAssignVisualsMotionRotation(t *testing.T) {
	bucket := assets.Bucket{Amazon: []string{"a.png"}}
	got := AssignVisuals(0, 16, bucket, nil, DefaultProfile())
	wantMotions := []string{MotionZoomIn, MotionZoomOut, MotionKenBurns, MotionZoomIn}
	if len(got) != 4 {
		t.Fatalf("expected 4 slices, got %d", len(got))
	}
	for i, v := range got {
		if v.Motion != wantMotions[i] {
			t.Errorf("slice %d motion = %q, want %q", i, v.Motion, wantMotions[i])
		}
	}
}

func TestAssignVisualsClipsAreStatic(t *testing.T) {
	bucket := assets.Bucket{
		Amazon: []string{"a.png"},
		Clips:  []string{"c.mp4"},
	}
	got := AssignVisuals(0, 16, bucket, nil, DefaultProfile())
	for _, v := range got {
		if v.Type == VisualClip && v.Motion != MotionStatic {
			t.Errorf("clip must be static: %+v", v)
		}
		if v.Type == VisualImage && v.Motion == MotionStatic {
			t.Errorf("image must carry a motion treatment: %+v", v)
		}
	}
}

func TestAssignVisualsFinalSliceClippedOrDropped(t *testing.T) {
	bucket := assets.Bucket{Amazon: []string{"a.png"}}
	prof := DefaultProfile()

	// 10s = 4 + 4 + 2: final slice clipped to 2s.
	clipped := AssignVisuals(0, 10, bucket, nil, prof)
	if len(clipped) != 3 {
		t.Fatalf("expected 3 slices, got %d", len(clipped))
	}
	last := clipped[len(clipped)-1]
	if last.DurationS != 2 {
		t.Errorf("final slice duration = %v, want 2", last.DurationS)
	}
	if last.StartS+last.DurationS > 10 {
		t.Errorf("final slice overruns segment end: %+v", last)
	}

	// 8.5s = 4 + 4 + 0.5: degenerate remainder dropped.
	dropped := AssignVisuals(0, 8.5, bucket, nil, prof)
	if len(dropped) != 2 {
		t.Fatalf("sub-minimum remainder must be dropped, got %d slices", len(dropped))
	}
}

func TestAssignVisualsZeroDuration(t *testing.T) {
	bucket := assets.Bucket{Amazon: []string{"a.png"}}
	if got := AssignVisuals(0, 0, bucket, nil, DefaultProfile()); len(got) != 0 {
		t.Fatalf("zero duration must yield no visuals: %v", got)
	}
}
