package model

// Setting 数据库中的运行时配置项。
type Setting struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Key   string `json:"key" gorm:"uniqueIndex;not null;size:64"`
	Value string `json:"value" gorm:"not null"`
	Desc  string `json:"desc"`
}
