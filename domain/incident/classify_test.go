package incident

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"billing-perf/domain/config"
)

func defaultDefs() []CategoryDef {
	var defs []CategoryDef
	for _, c := range config.Defaults().Categories {
		defs = append(defs, CategoryDef{Name: c.Name, Tasks: c.Tasks})
	}
	return defs
}

func TestClassifyVocabulary(t *testing.T) {
	cls := NewClassifier(defaultDefs())
	for _, def := range defaultDefs() {
		for _, task := range def.Tasks {
			assert.Equal(t, def.Name, cls.Classify(task), "task %q", task)
		}
	}
}

func TestClassifyUnknownIsOther(t *testing.T) {
	cls := NewClassifier(defaultDefs())
	assert.Equal(t, CategoryOther, cls.Classify("Something never seen"))
	assert.Equal(t, CategoryOther, cls.Classify(""))
	// Matching is exact, not fuzzy.
	assert.Equal(t, CategoryOther, cls.Classify("jws/apex - stpo errors"))
}

func TestClassifyIsPure(t *testing.T) {
	cls := NewClassifier([]CategoryDef{{Name: "X", Tasks: []string{"a"}}})
	assert.Equal(t, "X", cls.Classify("a"))
	assert.Equal(t, "X", cls.Classify("a"))
	assert.Equal(t, CategoryOther, cls.Classify("b"))
	assert.Equal(t, "X", cls.Classify("a"))
}
