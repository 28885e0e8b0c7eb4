// Package ingest loads curve sets from delimited text files.
//
// Every row holds one curve: its id in the first field and its values in the
// remaining ones. Fields are tab separated by default.
//
//	a	1	2	3
//	b	10	20	30
//
// # Loading
//
//	set, err := ingest.LoadCSV("curves.csv", nil)
//
//	opts := ingest.DefaultCSVOptions()
//	opts.Delimiter = ','
//	opts.BitSize = 64
//	set, err := ingest.LoadCSVFromReader(reader, opts)
//
// Values are parsed as 32 bit floats unless BitSize is 64. Rows holding only
// an id, empty files and files without a .csv extension are rejected.
//
// # Saving
//
//	err := ingest.SaveCSV(set, "out.csv", "\t")
package ingest
