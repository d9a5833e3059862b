package features

// Feature family names. Matrix column names are the family name plus a
// 1-based dimension suffix, e.g. POS_DISTRIBUTION_3.
const (
	FamilyAvgWords                 = "AVG_WORDS"
	FamilyAvgSentences             = "AVG_SENTENCES"
	FamilyPOSDistribution          = "POS_DISTRIBUTION"
	FamilyLexiconSize              = "LEXICON_SIZE"
	FamilyForeignRatio             = "FOREIGN_RATIO"
	FamilyPunctuationsDistribution = "PUNCTUATIONS_DISTRIBUTION"
)

// familyOrder is the fixed concatenation order of the column blocks.
var familyOrder = []string{
	FamilyAvgWords,
	FamilyAvgSentences,
	FamilyPOSDistribution,
	FamilyLexiconSize,
	FamilyForeignRatio,
	FamilyPunctuationsDistribution,
}
