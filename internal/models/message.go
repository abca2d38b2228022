package models

// Message 代表留言板上的一則留言，對應 messages 資料表
type Message struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Handle string `gorm:"column:handle;type:text" json:"handle"`   // 留言者自填的顯示名稱
	Body   string `gorm:"column:message;type:text" json:"message"` // 留言內容
}

// TableName 固定資料表名稱為 messages
func (Message) TableName() string {
	return "messages"
}
