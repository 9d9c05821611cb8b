package reviewreply

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/bbalet/stopwords"
	"gonum.org/v1/gonum/mat"
)

// maxNGram is the longest n-gram a vectorizer builds.
const maxNGram = 8

// A Vectorizer turns text into L2-normalized TF-IDF vectors over a fixed
// vocabulary of word n-grams.
type Vectorizer struct {
	Vocabulary map[string]int // n-gram -> column
	IDF        []float64      // smoothed inverse document frequency per column
	NGramMin   int
	NGramMax   int
	StopWords  bool // drop English stop words before building n-grams

	idf *mat.VecDense
}

// newVectorizer creates an unfitted vectorizer from the training configuration.
func newVectorizer(config TrainingConfig) *Vectorizer {
	v := &Vectorizer{
		NGramMin:  config.NGramMin,
		NGramMax:  config.NGramMax,
		StopWords: config.StopWords,
	}
	if v.NGramMin < 1 {
		v.NGramMin = 1
	}
	if v.NGramMin > maxNGram {
		v.NGramMin = maxNGram
	}
	if v.NGramMax < v.NGramMin {
		v.NGramMax = v.NGramMin
	}
	if v.NGramMax > maxNGram {
		v.NGramMax = maxNGram
	}
	return v
}

// analyze lowercases text, keeps words of two or more characters, and emits
// every n-gram in the configured range.
func (v *Vectorizer) analyze(text string) []string {
	var words []string
	for _, w := range wordRuns(strings.ToLower(text)) {
		if utf8.RuneCountInString(w) < 2 {
			continue
		}
		if v.StopWords && isStopWord(w) {
			continue
		}
		words = append(words, w)
	}

	var grams []string
	for n := v.NGramMin; n <= v.NGramMax; n++ {
		for i := 0; i+n <= len(words); i++ {
			grams = append(grams, strings.Join(words[i:i+n], " "))
		}
	}
	return grams
}

func isStopWord(word string) bool {
	return strings.TrimSpace(stopwords.CleanString(word, "en", false)) == ""
}

// fit learns the vocabulary and IDF weights from a corpus, keeping at most
// maxFeatures n-grams ranked by total count.
func (v *Vectorizer) fit(corpus []string, maxFeatures int) {
	counts := make(map[string]int)
	docFreq := make(map[string]int)
	for _, doc := range corpus {
		seen := make(map[string]bool)
		for _, g := range v.analyze(doc) {
			counts[g]++
			if !seen[g] {
				seen[g] = true
				docFreq[g]++
			}
		}
	}

	terms := make([]string, 0, len(counts))
	for g := range counts {
		terms = append(terms, g)
	}
	sort.Strings(terms)
	if maxFeatures > 0 && len(terms) > maxFeatures {
		sort.SliceStable(terms, func(i, j int) bool {
			return counts[terms[i]] > counts[terms[j]]
		})
		terms = terms[:maxFeatures]
		sort.Strings(terms)
	}

	n := float64(len(corpus))
	v.Vocabulary = make(map[string]int, len(terms))
	v.IDF = make([]float64, len(terms))
	for i, g := range terms {
		v.Vocabulary[g] = i
		v.IDF[i] = math.Log((1+n)/(1+float64(docFreq[g]))) + 1
	}
	v.prepare()
}

// prepare builds the dense IDF vector. It must run before Transform is shared
// between goroutines.
func (v *Vectorizer) prepare() {
	v.idf = nil
	if len(v.IDF) > 0 {
		v.idf = mat.NewVecDense(len(v.IDF), append([]float64(nil), v.IDF...))
	}
}

// Features returns the number of columns in the vocabulary.
func (v *Vectorizer) Features() int {
	return len(v.Vocabulary)
}

// Transform returns the TF-IDF vector of text. Text with no known n-grams maps
// to the zero vector.
func (v *Vectorizer) Transform(text string) *mat.VecDense {
	tf := mat.NewVecDense(max(v.Features(), 1), nil)
	if v.idf == nil {
		return tf
	}
	for _, g := range v.analyze(text) {
		if col, ok := v.Vocabulary[g]; ok {
			tf.SetVec(col, tf.AtVec(col)+1)
		}
	}
	tf.MulElemVec(tf, v.idf)
	if norm := mat.Norm(tf, 2); norm > 0 {
		tf.ScaleVec(1/norm, tf)
	}
	return tf
}
