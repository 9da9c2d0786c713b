package cards

// Zone is a deck zone kind.
type Zone string

const (
	ZoneMain  Zone = "main"
	ZoneExtra Zone = "extra"
)

// ParseZone accepts "main" and "extra".
func ParseZone(s string) (Zone, bool) {
	switch Zone(s) {
	case ZoneMain, ZoneExtra:
		return Zone(s), true
	}
	return "", false
}

// ReservedIDFloor is the first id of the non-deckable token range.
const ReservedIDFloor = 100000

// DefaultTypeColor is used for types without a known color.
const DefaultTypeColor = "#555555"

// extraTypes are the card types that live in the extra zone.
var extraTypes = map[string]struct{}{
	"融合":    {},
	"シンクロ":  {},
	"エクシーズ": {},
	"リンク":   {},
	"超次元":   {},
}

var typeColors = map[string]string{
	"通常罠":    "#B766AD",
	"永続罠":    "#B766AD",
	"カウンター罠": "#B766AD",
	"通常魔法":   "#00BB00",
	"永続魔法":   "#00BB00",
	"装備魔法":   "#00BB00",
	"儀式魔法":   "#00BB00",
	"フィールド":  "#00BB00",
	"速攻魔法":   "#00BB00",
	"効果モン":   "#D26900",
	"通常モン":   "#FFC78E",
	"融合":     "#E800E8",
	"儀式":     "#6A6AFF",
	"シンクロ":   "#FCFCFC",
	"エクシーズ":  "#9D9D9D",
	"リンク":    "#2894FF",
	"超次元":    "#EA0000",
}

var attributeIcons = map[string]string{
	"光": "🌞 光",
	"闇": "🌑 闇",
	"地": "⛰️ 地",
	"水": "💧 水",
	"炎": "🔥 炎",
	"風": "🌬️ 風",
	"神": "⚡ 神",
}

// IsExtraType reports whether cards of the type belong to the extra zone.
func IsExtraType(cardType string) bool {
	_, ok := extraTypes[cardType]
	return ok
}

// ZoneOf maps a card type to its deck zone.
func ZoneOf(cardType string) Zone {
	if IsExtraType(cardType) {
		return ZoneExtra
	}
	return ZoneMain
}

// TypeColor returns the display color of a card type.
func TypeColor(cardType string) string {
	if c, ok := typeColors[cardType]; ok {
		return c
	}
	return DefaultTypeColor
}

// AttributeLabel returns the attribute with its icon, or the bare attribute
// when no icon is known.
func AttributeLabel(attr string) string {
	if l, ok := attributeIcons[attr]; ok {
		return l
	}
	return attr
}
