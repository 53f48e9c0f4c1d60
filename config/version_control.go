package config

// Version system:
// vMAJOR.MINOR.PATCH

// Centralized version control
const (
	// Executible
	Main_version = "v0.3.0"

	// Modular tools
	Benchmark    = "v1.1.0"
	Codon_Table  = "v0.2.0"
	Exam         = "v0.3.0"
	Lex_Sort     = "v1.0.0"
	Lysine_Stats = "v0.2.1"
	Lysine_Plot  = "v0.1.0"
	Number_List  = "v1.0.0"
	ORF_Scan     = "v0.3.0"
	Sanity_check = "v1.0.0"
)

// Default input locations, relative to the working directory
const (
	DefaultCodonsFile = "data/codons.txt"
	DefaultDNAFile    = "data/dna.txt"
	DefaultSeqsFile   = "data/multi_seqs.txt"
	DefaultPlotFile   = "lysine_hist.png"
	DefaultLastNumber = 21
)
