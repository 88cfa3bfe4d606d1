package feature

// BurstFeature identifies an ability pattern in a card's life-burst
// text. The burst vocabulary is disjoint from Feature and is encoded
// into its own single word.
type BurstFeature string

const (
	BurstDraw       BurstFeature = "burst_draw"
	BurstCharge     BurstFeature = "burst_charge"
	BurstSalvage    BurstFeature = "burst_salvage"
	BurstBanish     BurstFeature = "burst_banish"
	BurstDown       BurstFeature = "burst_down"
	BurstFreeze     BurstFeature = "burst_freeze"
	BurstBounce     BurstFeature = "burst_bounce"
	BurstDeckBounce BurstFeature = "burst_deck_bounce"
	BurstPowerDown  BurstFeature = "burst_power_down"
	BurstDamage     BurstFeature = "burst_damage"
	BurstGuard      BurstFeature = "burst_guard"
	BurstAddLife    BurstFeature = "burst_add_life"
	BurstTrash      BurstFeature = "burst_trash"
	BurstDiscard    BurstFeature = "burst_discard"
)

type burstDef struct {
	Feature BurstFeature
	Label   string
	Bit     uint
}

var burstDefs = []burstDef{
	{BurstDraw, "ドロー", 1},
	{BurstCharge, "エナチャージ", 2},
	{BurstSalvage, "回収", 3},
	{BurstBanish, "バニッシュ", 4},
	{BurstDown, "ダウン", 5},
	{BurstFreeze, "凍結", 6},
	{BurstBounce, "バウンス", 7},
	{BurstDeckBounce, "デッキバウンス", 8},
	{BurstPowerDown, "パワーダウン", 9},
	{BurstDamage, "ダメージ", 10},
	{BurstGuard, "ガード", 11},
	{BurstAddLife, "ライフクロス追加", 12},
	{BurstTrash, "トラッシュ送り", 13},
	{BurstDiscard, "手札破壊", 14},
}

var (
	burstIndex   = make(map[BurstFeature]burstDef, len(burstDefs))
	burstByLabel = make(map[string]BurstFeature, len(burstDefs))
)

func init() {
	for _, d := range burstDefs {
		burstIndex[d.Feature] = d
		burstByLabel[d.Label] = d.Feature
	}
}

// Label returns the human-facing display name for b.
func (b BurstFeature) Label() string {
	if d, ok := burstIndex[b]; ok {
		return d.Label
	}
	return string(b)
}

// AllBurst returns every burst feature in position order.
func AllBurst() []BurstFeature {
	out := make([]BurstFeature, len(burstDefs))
	for i, d := range burstDefs {
		out[i] = d.Feature
	}
	return out
}
