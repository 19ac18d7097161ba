package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Compliment 连接发送者、接收者与标签；外键在删除/更新时置空
type Compliment struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserSender   *string   `json:"user_sender" gorm:"column:user_sender;type:varchar(36)"`
	UserReceiver *string   `json:"user_receiver" gorm:"column:user_receiver;type:varchar(36)"`
	TagID        *string   `json:"tag_id" gorm:"column:tag_id;type:varchar(36)"`
	Message      string    `json:"message" gorm:"column:message;not null"`
	CreatedAt    time.Time `json:"created_at"`

	Sender   *User `json:"userSender,omitempty" gorm:"foreignKey:UserSender;references:ID;constraint:OnUpdate:SET NULL,OnDelete:SET NULL;"`
	Receiver *User `json:"userReceiver,omitempty" gorm:"foreignKey:UserReceiver;references:ID;constraint:OnUpdate:SET NULL,OnDelete:SET NULL;"`
	Tag      *Tag  `json:"tag,omitempty" gorm:"foreignKey:TagID;references:ID;constraint:OnUpdate:SET NULL,OnDelete:SET NULL;"`
}

func (Compliment) TableName() string { return "compliments" }

func (c *Compliment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// All 返回需要迁移的全部模型，顺序即建表顺序
func All() []interface{} {
	return []interface{}{&User{}, &Tag{}, &Compliment{}}
}
