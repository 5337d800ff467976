package models

// LifecycleEvent records one step of a multi-step organization flow.
// Rows are append-only; a rename that stopped halfway leaves a trail ending in a failed step.
type LifecycleEvent struct {
	BaseModel
	OrganizationID   string          `json:"organization_id" gorm:"size:24;index"`
	OrganizationSlug string          `json:"organization_slug" gorm:"size:200;index;not null"`
	Action           LifecycleAction `json:"action" gorm:"type:varchar(20);not null"`
	Step             string          `json:"step" gorm:"size:50;not null"`
	Status           LifecycleStatus `json:"status" gorm:"type:varchar(10);not null"`
	Detail           string          `json:"detail,omitempty" gorm:"type:text"`
	Actor            string          `json:"actor,omitempty" gorm:"size:255"`
}

// TableName returns the table name for LifecycleEvent
func (LifecycleEvent) TableName() string {
	return "lifecycle_events"
}
