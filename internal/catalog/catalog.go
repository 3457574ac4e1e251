package catalog

import (
	"fmt"
	"strings"
)

// Index is one named sequencing index.
type Index struct {
	Name     string
	Sequence string
}

// Catalog maps index names to nucleotide sequences. It is read-only once built.
type Catalog struct {
	indexes []Index
	byName  map[string]string
}

// agilentSureSelect is regenerated with indexDict from the kit's index sheet.
var agilentSureSelect = []Index{
	{"P7_i1", "TAAGGCGA"},
	{"P7_i2", "CGTACTAG"},
	{"P7_i3", "AGGCAGAA"},
	{"P7_i4", "TCCTGAGC"},
	{"P7_i5", "GTAGAGGA"},
	{"P7_i6", "TAGGCATG"},
	{"P7_i7", "CTCTCTAC"},
	{"P7_i8", "CAGAGAGG"},
	{"P7_i9", "GCTACGCT"},
	{"P7_i10", "CGAGGCTG"},
	{"P7_i11", "AAGAGGCA"},
	{"P7_i12", "GGACTCCT"},
	{"P5_i13", "GCGATCTA"},
	{"P5_i14", "ATAGAGAG"},
	{"P5_i15", "AGAGGATA"},
	{"P5_i16", "TCTACTCT"},
	{"P5_i17", "CTCCTTAC"},
	{"P5_i18", "TATGCAGT"},
	{"P5_i19", "TACTCCTT"},
	{"P5_i20", "AGGCTTAG"},
}

// AgilentSureSelect is the index set used by the pipeline.
var AgilentSureSelect = mustNew(agilentSureSelect)

// New builds a catalog from indexes, keeping their order.
func New(indexes []Index) (*Catalog, error) {
	c := &Catalog{
		indexes: make([]Index, 0, len(indexes)),
		byName:  make(map[string]string, len(indexes)),
	}
	for _, idx := range indexes {
		if idx.Name == "" {
			return nil, fmt.Errorf("index with sequence %q has no name", idx.Sequence)
		}
		if _, dup := c.byName[idx.Name]; dup {
			return nil, fmt.Errorf("duplicate index name %q", idx.Name)
		}
		if err := validSequence(idx.Sequence); err != nil {
			return nil, fmt.Errorf("index %s: %v", idx.Name, err)
		}
		c.indexes = append(c.indexes, idx)
		c.byName[idx.Name] = idx.Sequence
	}
	return c, nil
}

func mustNew(indexes []Index) *Catalog {
	c, err := New(indexes)
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup returns the sequence for name.
func (c *Catalog) Lookup(name string) (string, bool) {
	seq, ok := c.byName[name]
	return seq, ok
}

// Contains reports whether name is a catalog key.
func (c *Catalog) Contains(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// Names returns the index names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.indexes))
	for i, idx := range c.indexes {
		names[i] = idx.Name
	}
	return names
}

// entries returns a copy of the catalog entries.
func (c *Catalog) entries() []Index {
	return append([]Index(nil), c.indexes...)
}

func validSequence(seq string) error {
	if seq == "" {
		return fmt.Errorf("empty sequence")
	}
	for i, r := range seq {
		if !strings.ContainsRune("ACGTN", r) {
			return fmt.Errorf("invalid base %q at %d; allowed: A C G T N", r, i+1)
		}
	}
	return nil
}
