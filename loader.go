package pressgloss

import (
	_ "embed" // reference.csv
	"encoding/csv"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

//go:embed data/reference.csv
var referenceCSV string

var (
	// ErrBadRefData is returned when the reference table is malformed.
	ErrBadRefData = errors.New("bad reference data")
	// ErrUnknownKind is returned for a row whose type column is not
	// Power, Province or Unit.
	ErrUnknownKind = errors.New("unknown reference entry type")
)

// Reference table column names.
const (
	ColObjective = "Objective"
	ColHaughty   = "Haughty"
	ColFamiliar  = "Familiar"
	ColAdjective = "Adjective"
)

// coastNames maps the coastal suffix of a compound province to its English
// qualifier.
var coastNames = map[string]string{
	"NCS": "north coast",
	"SCS": "south coast",
	"ECS": "east coast",
	"WCS": "west coast",
}

// Entry is one row of the reference table.
type Entry struct {
	// Trigram is the DAIDE code.
	Trigram string
	// Kind is "Power", "Province" or "Unit".
	Kind string
	// Names maps a column (Objective, Haughty, ...) to its display string.
	Names map[string]string
	// Sea and Coast classify provinces; a fleet may stand in either.
	Sea, Coast bool
	// Supply marks supply centres.
	Supply bool
	// Home is the power owning this home supply centre, if any.
	Home Power
}

// RefData holds the power, province and unit tables. It is never written
// after loading and is safe for concurrent readers.
type RefData struct {
	powers    map[Power]*Entry
	provinces map[Province]*Entry
	units     map[UnitType]*Entry

	powerList    []Power
	provinceList []Province
	seaList      []Province
	supplyList   []Province
}

var (
	defaultRef     *RefData
	defaultRefErr  error
	defaultRefOnce sync.Once
)

// DefaultRefData returns the standard map shipped with the package. The
// table is parsed once on first use.
func DefaultRefData() (*RefData, error) {
	defaultRefOnce.Do(func() {
		defaultRef, defaultRefErr = LoadRefData(strings.NewReader(referenceCSV))
	})
	return defaultRef, defaultRefErr
}

// MustDefaultRefData is DefaultRefData for callers that cannot proceed
// without the embedded table.
func MustDefaultRefData() *RefData {
	ref, err := DefaultRefData()
	if err != nil {
		panic(err)
	}
	return ref
}

// LoadRefDataFile reads a reference table from a CSV file on disk.
func LoadRefDataFile(path string) (*RefData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open reference data")
	}
	defer f.Close()
	ref, err := LoadRefData(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return ref, nil
}

// LoadRefData parses a reference table. The first row is the header and
// must contain at least the trigram, type and Objective columns.
func LoadRefData(r io.Reader) (*RefData, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, errors.Wrap(ErrBadRefData, "missing header")
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.TrimSpace(h)] = i
	}
	for _, need := range []string{"trigram", "type", ColObjective} {
		if _, ok := cols[need]; !ok {
			return nil, errors.Wrapf(ErrBadRefData, "missing column %q", need)
		}
	}

	ref := &RefData{
		powers:    make(map[Power]*Entry),
		provinces: make(map[Province]*Entry),
		units:     make(map[UnitType]*Entry),
	}

	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, errors.Wrapf(ErrBadRefData, "line %d: %v", line, err)
		}
		e, err := parseEntry(rec, cols)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		if e == nil {
			continue
		}
		ref.add(e)
	}

	sort.Slice(ref.powerList, func(i, j int) bool { return ref.powerList[i] < ref.powerList[j] })
	sort.Slice(ref.provinceList, func(i, j int) bool { return ref.provinceList[i] < ref.provinceList[j] })
	sort.Slice(ref.seaList, func(i, j int) bool { return ref.seaList[i] < ref.seaList[j] })
	sort.Slice(ref.supplyList, func(i, j int) bool { return ref.supplyList[i] < ref.supplyList[j] })

	if len(ref.powers) == 0 || len(ref.provinces) == 0 || len(ref.units) == 0 {
		return nil, errors.Wrap(ErrBadRefData, "table needs powers, provinces and units")
	}
	return ref, nil
}

// parseEntry converts one CSV record. Blank lines yield nil.
func parseEntry(rec []string, cols map[string]int) (*Entry, error) {
	field := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	trigram := strings.ToUpper(field("trigram"))
	if trigram == "" {
		return nil, nil
	}
	e := &Entry{
		Trigram: trigram,
		Kind:    field("type"),
		Names:   make(map[string]string),
		Sea:     field("Sea") == "1",
		Coast:   field("Coast") == "1",
		Supply:  field("Supply") == "1",
		Home:    Power(strings.ToUpper(field("Home"))),
	}
	switch e.Kind {
	case "Power", "Province", "Unit":
	default:
		return nil, errors.Wrapf(ErrUnknownKind, "%s: %q", trigram, e.Kind)
	}
	for name := range cols {
		switch name {
		case "trigram", "type", "Sea", "Coast", "Supply", "Home":
			continue
		}
		if v := field(name); v != "" {
			e.Names[name] = v
		}
	}
	if e.Names[ColObjective] == "" {
		return nil, errors.Wrapf(ErrBadRefData, "%s has no Objective name", trigram)
	}
	return e, nil
}

func (r *RefData) add(e *Entry) {
	switch e.Kind {
	case "Power":
		p := Power(e.Trigram)
		if _, dup := r.powers[p]; !dup {
			r.powerList = append(r.powerList, p)
		}
		r.powers[p] = e
	case "Province":
		p := Province(e.Trigram)
		if _, dup := r.provinces[p]; !dup {
			r.provinceList = append(r.provinceList, p)
			if e.Sea {
				r.seaList = append(r.seaList, p)
			}
			if e.Supply {
				r.supplyList = append(r.supplyList, p)
			}
		}
		r.provinces[p] = e
	case "Unit":
		r.units[UnitType(e.Trigram)] = e
	}
}

// IsPower reports whether p is a known power.
func (r *RefData) IsPower(p Power) bool {
	_, ok := r.powers[p]
	return ok
}

// IsUnitType reports whether u is a known unit type.
func (r *RefData) IsUnitType(u UnitType) bool {
	_, ok := r.units[u]
	return ok
}

// IsProvince reports whether p is a known province or a coastal compound
// of one.
func (r *RefData) IsProvince(p Province) bool {
	base, coast := splitCoast(p)
	if _, ok := r.provinces[base]; !ok {
		return false
	}
	return coast == "" || coastNames[coast] != ""
}

// Powers returns all power trigrams in sorted order.
func (r *RefData) Powers() []Power {
	return append([]Power(nil), r.powerList...)
}

// Provinces returns all province trigrams in sorted order.
func (r *RefData) Provinces() []Province {
	return append([]Province(nil), r.provinceList...)
}

// Seas returns the sea provinces, the only ones a convoy route may use.
func (r *RefData) Seas() []Province {
	return append([]Province(nil), r.seaList...)
}

// SupplyCenters returns the supply centre provinces.
func (r *RefData) SupplyCenters() []Province {
	return append([]Province(nil), r.supplyList...)
}

// HomeCenters returns the home supply centres of p in sorted order.
func (r *RefData) HomeCenters(p Power) []Province {
	var out []Province
	for _, prov := range r.supplyList {
		if r.provinces[prov].Home == p {
			out = append(out, prov)
		}
	}
	return out
}

// IsSea reports whether p is a sea province.
func (r *RefData) IsSea(p Province) bool {
	base, _ := splitCoast(p)
	e, ok := r.provinces[base]
	return ok && e.Sea
}

// IsCoastal reports whether a fleet may stand in p.
func (r *RefData) IsCoastal(p Province) bool {
	base, _ := splitCoast(p)
	e, ok := r.provinces[base]
	return ok && (e.Coast || e.Sea)
}

// PowerName returns the display string of p in the given column, falling
// back to the Objective column. ok is false for unknown powers.
func (r *RefData) PowerName(p Power, column string) (string, bool) {
	e, ok := r.powers[p]
	if !ok {
		return "", false
	}
	if v := e.Names[column]; v != "" {
		return v, true
	}
	return e.Names[ColObjective], true
}

// ProvinceName returns the display name of p, qualifying coastal compounds
// ("Spain (north coast)").
func (r *RefData) ProvinceName(p Province) (string, bool) {
	base, coast := splitCoast(p)
	e, ok := r.provinces[base]
	if !ok {
		return "", false
	}
	name := e.Names[ColObjective]
	if coast == "" {
		return name, true
	}
	q, ok := coastNames[coast]
	if !ok {
		return "", false
	}
	return name + " (" + q + ")", true
}

// UnitName returns "army" or "fleet".
func (r *RefData) UnitName(u UnitType) (string, bool) {
	e, ok := r.units[u]
	if !ok {
		return "", false
	}
	return e.Names[ColObjective], true
}

// splitCoast separates a coastal compound into its province and coast
// codes. Plain trigrams return an empty coast.
func splitCoast(p Province) (Province, string) {
	if len(p) == 6 {
		return p[:3], string(p[3:])
	}
	return p, ""
}
