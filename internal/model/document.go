package model

import "time"

const (
	DocumentStatusActive  = "active"
	DocumentStatusDeleted = "deleted"
)

// Document : метаданные одного загруженного файла.
// Строка никогда не удаляется физически, при удалении статус меняется на deleted.
type Document struct {
	UUID             string     `db:"uuid" json:"uuid"`
	CompanyID        string     `db:"company_id" json:"company_id"`
	EmployeeID       *string    `db:"employee_id" json:"employee_id,omitempty"`
	Category         string     `db:"category" json:"category"`
	ReferenceType    string     `db:"reference_type" json:"reference_type"`
	ReferenceID      string     `db:"reference_id" json:"reference_id"`
	Bucket           string     `db:"bucket" json:"bucket"`
	StoragePath      string     `db:"storage_path" json:"storage_path"`
	WebURL           string     `db:"web_url" json:"web_url"`
	ShareURL         string     `db:"share_url" json:"share_url,omitempty"`
	FilenameOriginal string     `db:"filename_original" json:"filename_original"`
	MimeType         string     `db:"mime_type" json:"mime_type"`
	SizeBytes        int64      `db:"size_bytes" json:"size_bytes"`
	UploadedBy       string     `db:"uploaded_by" json:"uploaded_by"`
	Status           string     `db:"status" json:"status"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updated_at"`
	DeletedAt        *time.Time `db:"deleted_at" json:"deleted_at,omitempty"`
}

// ObjectInfo : описание объекта в удалённом хранилище
type ObjectInfo struct {
	Bucket    string
	Key       string
	ETag      string
	SizeBytes int64
}

// CompanyContext : справочные данные компании для построения пути
type CompanyContext struct {
	ID             string `db:"id" json:"id"`
	Name           string `db:"name" json:"name"`
	SequenceNumber *int   `db:"sequence_number" json:"sequence_number"`
}

// EmployeeContext : справочные данные сотрудника для построения пути
type EmployeeContext struct {
	ID             string `db:"id" json:"id"`
	CompanyID      string `db:"company_id" json:"company_id"`
	FirstName      string `db:"first_name" json:"first_name"`
	LastName       string `db:"last_name" json:"last_name"`
	SequenceNumber *int   `db:"sequence_number" json:"sequence_number"`
}

// FullName : отображаемое имя сотрудника
func (e *EmployeeContext) FullName() string {
	if e.FirstName == "" {
		return e.LastName
	}
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}

// PathMetadata : данные для построения пути и имени файла.
// Номера последовательностей обязательны, отсутствие — ошибка конфигурации.
type PathMetadata struct {
	CompanyName      string
	CompanySequence  *int
	EmployeeName     string
	EmployeeSequence *int
	FormSequence     *int
}

// UploadInput : входные данные оркестратора загрузки
type UploadInput struct {
	FileBytes     []byte
	FileName      string
	MimeType      string
	CompanyID     string
	EmployeeID    string
	ReferenceID   string
	ReferenceType string
	UploadedBy    string
	Metadata      map[string]interface{}
}

// UploadResult : результат успешной загрузки файла в удалённое хранилище
type UploadResult struct {
	FilePath string `json:"filePath"`
	Bucket   string `json:"driveId"`
	ItemID   string `json:"itemId"`
	WebURL   string `json:"webUrl"`
	ShareURL string `json:"sharingLink,omitempty"`
	FileName string `json:"fileName"`
	MimeType string `json:"mimeType"`
}

// DeleteInput : входные данные оркестратора удаления
type DeleteInput struct {
	ItemID        string
	DocumentUUID  string
	UserID        string
	CompanyID     string
	ReferenceID   string
	ReferenceType string
}

// ActivityLog : запись аудита, только добавляется, никогда не изменяется
type ActivityLog struct {
	UUID        string                 `db:"uuid" json:"uuid"`
	CompanyID   string                 `db:"company_id" json:"company_id"`
	ActorID     string                 `db:"actor_id" json:"actor_id"`
	Action      string                 `db:"action" json:"action"`
	Description string                 `db:"description" json:"description"`
	OldValue    map[string]interface{} `json:"old_value,omitempty"`
	NewValue    map[string]interface{} `json:"new_value,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt   time.Time              `db:"created_at" json:"created_at"`
}
