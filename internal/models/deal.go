package models

// Формат хранения дат и таймстемпов. Оба остаются текстом, чтобы
// сравнение/сортировка в БД работали лексикографически.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "2006-01-02 15:04:05"
)

type LeadType string

const (
	LeadSeller LeadType = "seller"
	LeadBuyer  LeadType = "buyer"
	LeadOwner  LeadType = "owner"
)

func (t LeadType) Valid() bool {
	switch t {
	case LeadSeller, LeadBuyer, LeadOwner:
		return true
	}
	return false
}

type DealStatus string

const (
	StatusActive   DealStatus = "active"
	StatusInactive DealStatus = "inactive"
)

func (s DealStatus) Valid() bool {
	switch s {
	case StatusActive, StatusInactive:
		return true
	}
	return false
}

// DealStage — свободный тег этапа воронки, стартовый этап "new".
const StageNew = "new"

type Deal struct {
	ID uint `gorm:"primaryKey"`

	LeadType  LeadType `gorm:"type:varchar(20);not null;default:'seller'"`
	Name      string   `gorm:"size:255;not null"`
	Phone     string   `gorm:"size:50"`
	Email     string   `gorm:"size:255"`
	Source    string   `gorm:"size:100"`
	Area      string   `gorm:"size:100"`
	AssetType string   `gorm:"size:100"`
	PriceYen  int64    `gorm:"not null;default:0"`

	Deadline  string     `gorm:"size:10"` // YYYY-MM-DD, пусто = не задан
	DealStage string     `gorm:"size:100;not null;default:'new'"`
	Status    DealStatus `gorm:"type:varchar(20);not null;default:'active'"`

	LastContact string `gorm:"size:10"`
	NextContact string `gorm:"size:10"`
	NextAction  string `gorm:"type:text"`
	Notes       string `gorm:"type:text"` // append-only журнал контактов

	// строки, а не time.Time: хранилище штампует их само (см. store)
	CreatedAt string `gorm:"size:19;not null"`
	UpdatedAt string `gorm:"size:19;not null"`

	// вычисляется планировщиком перед показом, не хранится
	DaysIdle int `gorm:"-"`
}
