package domain

import "time"

type NotificationVariant string

const (
	VariantDefault     NotificationVariant = "default"
	VariantDestructive NotificationVariant = "destructive"
)

// DataMode - режим данных, о котором сообщает уведомление
type DataMode string

const (
	ModeLive    DataMode = "live"
	ModeOffline DataMode = "offline"
)

// Notification - неблокирующее уведомление о состоянии источника данных
type Notification struct {
	ID          string              `json:"id"`
	Kind        string              `json:"kind"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Variant     NotificationVariant `json:"variant"`
	Mode        DataMode            `json:"mode"`
	CreatedAt   time.Time           `json:"created_at"`
}
