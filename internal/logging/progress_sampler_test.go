package logging

import "testing"

func TestNewProgressSampler(t *testing.T) {
	tests := []struct {
		name       string
		bucketSize float64
		wantSize   float64
	}{
		{"default bucket size for zero", 0, 5},
		{"default bucket size for negative", -1, 5},
		{"custom bucket size", 10, 10},
		{"small bucket size", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewProgressSampler(tt.bucketSize)
			if s.bucketSize != tt.wantSize {
				t.Errorf("bucketSize = %v, want %v", s.bucketSize, tt.wantSize)
			}
			if s.lastBucket != -1 {
				t.Errorf("lastBucket = %d, want -1", s.lastBucket)
			}
		})
	}
}

func TestProgressSamplerNilReceiver(t *testing.T) {
	var s *ProgressSampler
	if !s.ShouldLog(50, "convert") {
		t.Error("ShouldLog on nil sampler should always return true")
	}
	s.Reset() // should not panic
}

func TestProgressSamplerPhaseChange(t *testing.T) {
	s := NewProgressSampler(5)

	if !s.ShouldLog(0, "discover") {
		t.Error("first phase should log")
	}
	if s.ShouldLog(0, "discover") {
		t.Error("same phase and percent should not log again")
	}
	if !s.ShouldLog(0, "convert") {
		t.Error("different phase should log")
	}
	if s.lastPhase != "convert" {
		t.Errorf("lastPhase = %q, want convert", s.lastPhase)
	}
}

func TestProgressSamplerPercentBuckets(t *testing.T) {
	s := NewProgressSampler(5)

	if !s.ShouldLog(0, "convert") {
		t.Error("0%% should log")
	}
	if s.ShouldLog(3, "convert") {
		t.Error("3%% should not log (same bucket)")
	}
	if !s.ShouldLog(5, "convert") {
		t.Error("5%% should log (new bucket)")
	}
	if s.ShouldLog(7, "convert") {
		t.Error("7%% should not log (same bucket)")
	}
	if !s.ShouldLog(10, "convert") {
		t.Error("10%% should log (new bucket)")
	}
}

func TestProgressSamplerCaps100Percent(t *testing.T) {
	s := NewProgressSampler(5)

	s.ShouldLog(95, "convert")

	if !s.ShouldLog(100, "convert") {
		t.Error("100%% should log")
	}
	if s.ShouldLog(105, "convert") {
		t.Error("105%% should not log again (same as 100%% bucket)")
	}
}

func TestProgressSamplerBucketResetOnPhaseChange(t *testing.T) {
	s := NewProgressSampler(5)

	s.ShouldLog(50, "discover")
	s.ShouldLog(0, "convert")

	if !s.ShouldLog(10, "convert") {
		t.Error("10%% should log after phase change reset bucket")
	}
}

func TestProgressSamplerMonotonicBuckets(t *testing.T) {
	s := NewProgressSampler(5)

	s.ShouldLog(50, "convert")

	if s.ShouldLog(40, "convert") {
		t.Error("regressing percent should not log")
	}
	if !s.ShouldLog(55, "convert") {
		t.Error("advancing past the high-water bucket should log")
	}
}

func TestProgressSamplerReset(t *testing.T) {
	s := NewProgressSampler(5)
	s.ShouldLog(50, "convert")

	s.Reset()

	if s.lastPhase != "" {
		t.Errorf("lastPhase = %q, want empty after reset", s.lastPhase)
	}
	if s.lastBucket != -1 {
		t.Errorf("lastBucket = %d, want -1 after reset", s.lastBucket)
	}
	if !s.ShouldLog(50, "convert") {
		t.Error("should log after reset")
	}
}
