package errcollect_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vvka-141/errcollect/pkg/errcollect"
)

func TestMarkerSet_Match(t *testing.T) {
	markers := errcollect.MarkerSet(errcollect.DefaultMarkers())

	assert.True(t, markers.Match(`return errors.Wrap(err, "x")`))
	assert.True(t, markers.Match(`return fmt.Errorf("x")`))
	assert.True(t, markers.Match(`base.NewBaseOperationProcessReasonError("x")`))
	assert.False(t, markers.Match(`log.Println("x")`))
	assert.False(t, errcollect.MarkerSet{""}.Match("anything"))
}

func TestSkipRule_Matches(t *testing.T) {
	rules := errcollect.DefaultSkipRules()
	process, factory := rules[0], rules[1]

	assert.True(t, process.Matches("func (opp *AssignProcessor) Process("))
	assert.True(t, process.Matches("  func (p *Processor) Process(ctx Context) error {"))
	assert.False(t, process.Matches("// func (p *Processor) Process("))
	assert.False(t, process.Matches("func (p *Processor) PreProcess("))

	assert.True(t, factory.Matches("func NewAssignProcessor(cp *currency.CurrencyPool) types.GetNewProcessor {"))
	assert.False(t, factory.Matches("var x types.GetNewProcessor"))
}

func TestExclusionRules(t *testing.T) {
	rules := errcollect.ExclusionRules{
		ExcludedFileSuffixes:     []string{"main.go", "error.go"},
		ExcludedFolderSubstrings: []string{"/src/proj/cmds"},
		PathStrip:                regexp.MustCompile(regexp.QuoteMeta("/src/proj")),
	}

	assert.True(t, rules.ExcludesFile("/src/proj/main.go"))
	assert.True(t, rules.ExcludesFile("/src/proj/types/error.go"))
	// Suffix match, not base-name match.
	assert.True(t, rules.ExcludesFile("/src/proj/types/domain_error.go"))
	assert.True(t, rules.ExcludesFile("/src/proj/cmds/run.go"))
	assert.False(t, rules.ExcludesFile("/src/proj/types/credential.go"))

	assert.Equal(t, "/types/credential.go", rules.DisplayPath("/src/proj/types/credential.go"))
	assert.Equal(t, "/a.go", errcollect.ExclusionRules{}.DisplayPath("/a.go"))
}

func TestScanRecord_Row(t *testing.T) {
	rec := errcollect.ScanRecord{FilePath: "/a.go", Line: 12, Category1: "c1", Category2: "c2", Detail: "d"}
	assert.Equal(t, []string{"/a.go", "12", "c1", "c2", "d"}, rec.Row())
	assert.Len(t, errcollect.ReportHeader, len(rec.Row()))
}
