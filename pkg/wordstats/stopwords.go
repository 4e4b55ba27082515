package wordstats

// stopwords is the fixed set of tokens excluded from the frequency
// statistics: Portuguese function words, the English function words that
// show up in mixed-language academic PDFs, and document-artifact tokens.
// The list is static configuration; it is never mutated at runtime.
var stopwords = map[string]struct{}{
	// Portuguese articles, prepositions and contractions
	"a": {}, "as": {}, "o": {}, "os": {}, "um": {}, "uma": {}, "uns": {}, "umas": {},
	"de": {}, "do": {}, "da": {}, "dos": {}, "das": {}, "em": {}, "no": {}, "na": {},
	"nos": {}, "nas": {}, "ao": {}, "aos": {}, "à": {}, "às": {}, "por": {}, "para": {},
	"pela": {}, "pelo": {}, "pelas": {}, "pelos": {}, "com": {}, "sem": {}, "sob": {},
	"sobre": {}, "entre": {}, "até": {}, "desde": {}, "num": {}, "numa": {},

	// Portuguese conjunctions and adverbs
	"e": {}, "ou": {}, "que": {}, "se": {}, "mas": {}, "como": {}, "não": {},
	"mais": {}, "menos": {}, "muito": {}, "também": {}, "já": {}, "ainda": {},
	"quando": {}, "onde": {}, "porque": {}, "pois": {}, "assim": {}, "então": {},

	// Portuguese pronouns and verbs
	"eu": {}, "ele": {}, "ela": {}, "eles": {}, "elas": {}, "nós": {}, "você": {},
	"seu": {}, "sua": {}, "seus": {}, "suas": {}, "este": {}, "esta": {}, "esse": {},
	"essa": {}, "isso": {}, "isto": {}, "aquele": {}, "aquela": {}, "qual": {},
	"é": {}, "são": {}, "foi": {}, "foram": {}, "ser": {}, "estar": {}, "está": {},
	"estão": {}, "tem": {}, "têm": {}, "ter": {}, "há": {}, "pode": {}, "podem": {},

	// English function words (mixed-language documents)
	"the": {}, "of": {}, "and": {}, "in": {}, "to": {}, "for": {}, "with": {},
	"that": {}, "this": {}, "is": {}, "are": {}, "was": {}, "were": {}, "be": {},
	"by": {}, "on": {}, "at": {}, "from": {}, "an": {}, "or": {}, "not": {},
	"it": {}, "its": {}, "we": {}, "our": {}, "can": {}, "which": {},

	// Document artifacts
	"doi": {}, "www": {}, "http": {}, "https": {}, "org": {}, "com": {},
	"fig": {}, "tab": {}, "vol": {}, "pp": {}, "et": {}, "al": {},
}

// IsStopword checks if a token is excluded from frequency statistics.
// Tokens are expected already lowercased.
func IsStopword(token string) bool {
	_, exists := stopwords[token]
	return exists
}
