package domain

// NgramRecord is one parsed line of an n-gram frequency list: the occurrence
// count followed by one to three words. Count stays textual; it is copied to
// the output unchanged.
//
// Word3 is only ever set when Word2 is set.
type NgramRecord struct {
	Count string
	Word1 string
	Word2 string
	Word3 string
}

// Order returns the number of words in the n-gram (1, 2 or 3).
func (r NgramRecord) Order() int {
	switch {
	case r.Word3 != "":
		return 3
	case r.Word2 != "":
		return 2
	default:
		return 1
	}
}

// Fields returns the non-empty fields in output order:
// count, word1, word2, word3.
func (r NgramRecord) Fields() []string {
	fields := make([]string, 0, 4)
	for _, f := range [...]string{r.Count, r.Word1, r.Word2, r.Word3} {
		if f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}
