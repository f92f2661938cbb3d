package textutil

import (
	"math"
	"testing"
)

func TestCountWords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "", 0},
		{"whitespace only", "   \n\t  ", 0},
		{"single word", "chapter", 1},
		{"prose", "It was a dark and stormy night.", 7},
		{"multiline", "First line.\nSecond line here.\n", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountWords(tt.input); got != tt.want {
				t.Errorf("CountWords(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "simple words",
			input: "Hello World",
			want:  []string{"hello", "world"},
		},
		{
			name:  "filters short",
			input: "a to the quick fox",
			want:  []string{"the", "quick", "fox"},
		},
		{
			name:  "handles punctuation",
			input: "Hello, World! How are you?",
			want:  []string{"hello", "world", "how", "are", "you"},
		},
		{
			name:  "empty string",
			input: "",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("Tokenize() = %v (len %d), want %v (len %d)",
					got, len(got), tt.want, len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNewFingerprintEmpty(t *testing.T) {
	if fp := NewFingerprint(""); fp != nil {
		t.Error("expected nil for empty text")
	}
}

func TestNewFingerprintNormCalculation(t *testing.T) {
	// "castle castle siege" -> castle:2, siege:1, norm = sqrt(5)
	fp := NewFingerprint("castle castle siege")
	if fp == nil {
		t.Fatal("expected fingerprint")
	}
	expectedNorm := math.Sqrt(5)
	if math.Abs(fp.norm-expectedNorm) > 0.0001 {
		t.Errorf("norm = %v, want %v", fp.norm, expectedNorm)
	}
}

func TestCosineSimilarityNil(t *testing.T) {
	if got := CosineSimilarity(nil, NewFingerprint("hello world")); got != 0 {
		t.Errorf("CosineSimilarity(nil, fp) = %v, want 0", got)
	}
	if got := CosineSimilarity(NewFingerprint("hello world"), nil); got != 0 {
		t.Errorf("CosineSimilarity(fp, nil) = %v, want 0", got)
	}
}

func TestCosineSimilarityIdentical(t *testing.T) {
	text := "The rebel fleet scattered beyond the outer rim"
	got := CosineSimilarity(NewFingerprint(text), NewFingerprint(text))
	if got != 1.0 {
		t.Errorf("CosineSimilarity(identical) = %v, want 1.0", got)
	}
}

func TestCosineSimilarityDisjoint(t *testing.T) {
	a := NewFingerprint("apple banana cherry")
	b := NewFingerprint("dog elephant frog")
	if got := CosineSimilarity(a, b); got != 0 {
		t.Errorf("CosineSimilarity(disjoint) = %v, want 0", got)
	}
}

func TestCosineSimilaritySymmetric(t *testing.T) {
	a := NewFingerprint("the siege of the northern keep")
	b := NewFingerprint("northern keep garrison report")
	if ab, ba := CosineSimilarity(a, b), CosineSimilarity(b, a); ab != ba {
		t.Errorf("CosineSimilarity not symmetric: (%v, %v)", ab, ba)
	}
}

func TestCosineSimilarityRelatedPassages(t *testing.T) {
	chapterOne := `
		The army crossed the frozen river at dawn. General Mara watched
		from the ridge as the vanguard broke through the ice shelf and
		struggled up the far bank toward the fortress walls.
	`
	chapterDraft := `
		At dawn the army crossed the frozen river. From the ridge General
		Mara watched the vanguard break the ice shelf and climb the far
		bank toward the fortress walls.
	`
	unrelated := `
		The merchant guild met in the lower city to argue over the new
		tariff on silk. Nobody mentioned the war at all.
	`

	base := NewFingerprint(chapterOne)
	if sim := CosineSimilarity(base, NewFingerprint(chapterDraft)); sim < 0.8 {
		t.Errorf("draft similarity = %v, want >= 0.8", sim)
	}
	if sim := CosineSimilarity(base, NewFingerprint(unrelated)); sim >= 0.5 {
		t.Errorf("unrelated similarity = %v, want < 0.5", sim)
	}
}

func TestCorpusIDF(t *testing.T) {
	corpus := NewCorpus()
	corpus.Add(NewFingerprint("dragon fortress siege"))
	corpus.Add(NewFingerprint("dragon market harvest"))
	corpus.Add(NewFingerprint("dragon dragon council"))

	idf := corpus.IDF()
	if idf == nil {
		t.Fatal("expected IDF weights")
	}
	// "dragon" appears in every document and should carry the lowest weight.
	if idf["dragon"] >= idf["siege"] {
		t.Errorf("idf[dragon] = %v, expected below idf[siege] = %v", idf["dragon"], idf["siege"])
	}
}

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"My Novel: Part One", "My Novel- Part One"},
		{"what/why", "what-why"},
		{"draft?*", "draft-"},
		{"  plain  ", "plain"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := SanitizeFileName(tt.input); got != tt.want {
			t.Errorf("SanitizeFileName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSanitizeToken(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"My Novel", "my_novel"},
		{"already-safe_1", "already-safe_1"},
		{"!!!", "unknown"},
		{"", "unknown"},
	}

	for _, tt := range tests {
		if got := SanitizeToken(tt.input); got != tt.want {
			t.Errorf("SanitizeToken(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
