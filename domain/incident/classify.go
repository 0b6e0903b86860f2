package incident

// CategoryDef binds one category name to its exact task-text vocabulary.
type CategoryDef struct {
	Name  string
	Tasks []string
}

// Classifier maps task texts to business categories. The reverse index is
// built once; the live export exceeds 800k rows and Classify runs once per
// row.
type Classifier struct {
	byTask map[string]string
}

// NewClassifier builds the task-text reverse index from the injected
// vocabulary.
func NewClassifier(defs []CategoryDef) *Classifier {
	byTask := make(map[string]string)
	for _, def := range defs {
		for _, task := range def.Tasks {
			byTask[task] = def.Name
		}
	}
	return &Classifier{byTask: byTask}
}

// Classify returns the category whose vocabulary contains taskText exactly,
// or CategoryOther when no category claims it.
func (c *Classifier) Classify(taskText string) string {
	if cat, ok := c.byTask[taskText]; ok {
		return cat
	}
	return CategoryOther
}
