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

func TestProgressSampler_NilSampler(t *testing.T) {
	var s *ProgressSampler
	if !s.ShouldLog(50, "indexing", "message") {
		t.Error("ShouldLog on nil sampler should always return true")
	}
	s.Reset() // should not panic
}

func TestProgressSampler_ShouldLogStageChange(t *testing.T) {
	s := NewProgressSampler(5)

	if !s.ShouldLog(0, "chapters", "starting") {
		t.Error("first stage should log")
	}
	if s.ShouldLog(0, "chapters", "still starting") {
		t.Error("same stage and percent should not log again")
	}
	if !s.ShouldLog(0, "records", "starting") {
		t.Error("different stage should log")
	}
	if s.lastStage != "records" {
		t.Errorf("lastStage = %q, want records", s.lastStage)
	}
}

func TestProgressSampler_BucketBoundaries(t *testing.T) {
	s := NewProgressSampler(10)

	if !s.ShouldLog(0, "indexing", "") {
		t.Error("first event should log")
	}
	if s.ShouldLog(5, "indexing", "") {
		t.Error("within the same bucket should not log")
	}
	if !s.ShouldLog(10, "indexing", "") {
		t.Error("crossing a bucket boundary should log")
	}
	if !s.ShouldLog(100, "indexing", "") {
		t.Error("completion should log")
	}
}

func TestProgressSampler_Reset(t *testing.T) {
	s := NewProgressSampler(5)
	s.ShouldLog(50, "indexing", "")

	s.Reset()

	if !s.ShouldLog(50, "indexing", "") {
		t.Error("after reset the same event should log again")
	}
}
