package storage

import (
	"time"

	"gorm.io/datatypes"
)

// ReportModel is the GORM model for finalized reports
type ReportModel struct {
	ID         string `gorm:"primaryKey"`
	Number     int    `gorm:"not null;index:idx_crew_number"`
	Crew       string `gorm:"not null;index:idx_crew_number"`
	Well       string `gorm:"default:''"`
	Field      string `gorm:"default:''"`
	CreatedBy  string `gorm:"not null;default:''"`
	CreatedAt  time.Time
	Operations []OperationModel `gorm:"foreignKey:ReportID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (ReportModel) TableName() string { return "reports" }

// OperationModel is the GORM model for report operations. Seq preserves
// insertion order.
type OperationModel struct {
	ID             uint   `gorm:"primaryKey;autoIncrement"`
	ReportID       string `gorm:"not null;index:idx_report_seq"`
	Seq            int    `gorm:"not null;index:idx_report_seq"`
	Shift          string `gorm:"not null;default:''"`
	Name           string `gorm:"not null;default:''"`
	StartTime      string `gorm:"not null;default:''"`
	EndTime        string `gorm:"not null;default:''"`
	Equipment      string `gorm:"default:''"`
	Representative string `gorm:"default:''"`
	Materials      string `gorm:"default:''"`
}

// TableName specifies the table name for GORM
func (OperationModel) TableName() string { return "operations" }

// ChangeLogModel is the GORM model for the append-only change log
type ChangeLogModel struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	ReportID  string `gorm:"not null;index:idx_log_report"`
	Actor     string `gorm:"not null;default:''"`
	Action    string `gorm:"not null;default:''"`
	Timestamp time.Time `gorm:"not null;index:idx_log_timestamp"`
}

// TableName specifies the table name for GORM
func (ChangeLogModel) TableName() string { return "change_log" }

// SessionModel is the GORM model for persisted dialogue sessions. The
// full session is stored as a JSON payload; State is duplicated as a
// queryable column.
type SessionModel struct {
	UserID    int64          `gorm:"primaryKey"`
	State     string         `gorm:"not null;default:''"`
	Payload   datatypes.JSON `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (SessionModel) TableName() string { return "sessions" }
