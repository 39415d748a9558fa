package card

import (
	"math/rand/v2"
	"strconv"

	"github.com/google/uuid"
)

// Color 定义牌的颜色
type Color int

const (
	Red Color = iota
	Yellow
	Green
	Blue
	Wild // 万能牌没有固定颜色
)

// colorNames 颜色字符串映射表
var colorNames = map[Color]string{
	Red:    "red",
	Yellow: "yellow",
	Green:  "green",
	Blue:   "blue",
	Wild:   "wild",
}

func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return strconv.Itoa(int(c))
}

// Value 定义牌面值
type Value int

const (
	Num0 Value = iota
	Num1
	Num2
	Num3
	Num4
	Num5
	Num6
	Num7
	Num8
	Num9
	Skip
	Reverse
	DrawTwo
	WildCard
	WildDrawFour

	// Flip 模式暗面专属牌面
	SkipAll
	ReverseAll
	DrawFive
)

// valueNames 牌面值字符串映射表
var valueNames = map[Value]string{
	Skip:         "skip",
	Reverse:      "reverse",
	DrawTwo:      "+2",
	WildCard:     "wild",
	WildDrawFour: "+4",
	SkipAll:      "skip all",
	ReverseAll:   "reverse all",
	DrawFive:     "+5",
}

func (v Value) String() string {
	if name, ok := valueNames[v]; ok {
		return name
	}
	return strconv.Itoa(int(v))
}

// IsNumber 是否为数字牌
func (v Value) IsNumber() bool {
	return v >= Num0 && v <= Num9
}

// Penalty 返回罚抽张数，非罚抽牌返回 0
func (v Value) Penalty() int {
	switch v {
	case DrawTwo:
		return 2
	case WildDrawFour:
		return 4
	case DrawFive:
		return 5
	}
	return 0
}

// Card 定义一张牌，创建后不可变
type Card struct {
	ID    string `json:"id"`
	Color Color  `json:"color"`
	Value Value  `json:"value"`
}

func (c Card) String() string {
	if c.Color == Wild {
		return c.Value.String()
	}
	return c.Color.String() + " " + c.Value.String()
}

// IsWild 是否为万能牌
func (c Card) IsWild() bool {
	return c.Color == Wild
}

// newCard 创建一张带全局唯一 ID 的牌
func newCard(color Color, value Value) Card {
	return Card{ID: uuid.NewString(), Color: color, Value: value}
}

// Deck 定义一副牌
type Deck []Card

// NewDeck 创建标准 108 张经典牌组：
// 每种颜色一张 0、1-9 各两张、skip/reverse/+2 各两张，外加 4 张 wild 和 4 张 +4
func NewDeck() Deck {
	deck := make(Deck, 0, 108)
	for color := Red; color <= Blue; color++ {
		deck = append(deck, newCard(color, Num0))
		for v := Num1; v <= DrawTwo; v++ {
			deck = append(deck, newCard(color, v), newCard(color, v))
		}
	}
	for range 4 {
		deck = append(deck, newCard(Wild, WildCard), newCard(Wild, WildDrawFour))
	}
	return deck
}

// NewFlipDeck 创建 Flip 模式牌组
// 亮面与经典牌组一致；暗面每种颜色 1-5 各两张、skip all/reverse all/+5 各两张（无万能牌）
func NewFlipDeck(dark bool) Deck {
	if !dark {
		return NewDeck()
	}
	deck := make(Deck, 0, 64)
	for color := Red; color <= Blue; color++ {
		for v := Num1; v <= Num5; v++ {
			deck = append(deck, newCard(color, v), newCard(color, v))
		}
		for _, v := range []Value{SkipAll, ReverseAll, DrawFive} {
			deck = append(deck, newCard(color, v), newCard(color, v))
		}
	}
	return deck
}

// Shuffle 均匀洗牌（Fisher-Yates）
func (d Deck) Shuffle() {
	rand.Shuffle(len(d), func(i, j int) {
		d[i], d[j] = d[j], d[i]
	})
}
