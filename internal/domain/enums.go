package domain

// TopicCategory is the closed set of discussion topic categories.
type TopicCategory string

const (
	TopicCategoryWorkProgress TopicCategory = "WORK_PROGRESS"
	TopicCategoryCareer       TopicCategory = "CAREER"
	TopicCategoryIssues       TopicCategory = "ISSUES"
	TopicCategoryFeedback     TopicCategory = "FEEDBACK"
	TopicCategoryOther        TopicCategory = "OTHER"
)

func (c TopicCategory) String() string { return string(c) }

func (c TopicCategory) IsValid() bool {
	switch c {
	case TopicCategoryWorkProgress, TopicCategoryCareer, TopicCategoryIssues,
		TopicCategoryFeedback, TopicCategoryOther:
		return true
	}
	return false
}

// TopicCategories lists all categories in stable display order.
// Aggregations iterate this slice so every category appears in
// distributions even when its count is zero.
func TopicCategories() []TopicCategory {
	return []TopicCategory{
		TopicCategoryWorkProgress,
		TopicCategoryCareer,
		TopicCategoryIssues,
		TopicCategoryFeedback,
		TopicCategoryOther,
	}
}

// ActionItemStatus is the flat three-state machine of an action item.
// Any state is reachable from any other in one transition.
type ActionItemStatus string

const (
	ActionItemStatusTodo       ActionItemStatus = "TODO"
	ActionItemStatusInProgress ActionItemStatus = "IN_PROGRESS"
	ActionItemStatusDone       ActionItemStatus = "DONE"
)

func (s ActionItemStatus) String() string { return string(s) }

func (s ActionItemStatus) IsValid() bool {
	switch s {
	case ActionItemStatusTodo, ActionItemStatusInProgress, ActionItemStatusDone:
		return true
	}
	return false
}
