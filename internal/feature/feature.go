// Package feature defines the closed-but-extensible vocabulary of card
// ability tags and their fixed bitset positions.
//
// Every feature owns a permanently assigned (word, bit) position so the
// vocabulary can grow past 64 entries without reshuffling bits already
// persisted in card records and overrides. Positions are append-only:
// removing a feature retires its position, it is never reassigned.
package feature

// Feature identifies one recognizable ability pattern extracted from
// card rules text.
type Feature string

const (
	DoubleCrush      Feature = "double_crush"
	TripleCrush      Feature = "triple_crush"
	DiscardOpponent  Feature = "discard_opponent"
	RandomDiscard    Feature = "random_discard"
	Draw             Feature = "draw"
	Assassin         Feature = "assassin"
	Freeze           Feature = "freeze"
	Drop             Feature = "drop"
	OnDrop           Feature = "on_drop"
	OnRefresh        Feature = "on_refresh"
	Lancer           Feature = "lancer"
	SLancer          Feature = "s_lancer"
	RemoveSigni      Feature = "remove_signi"
	NonAttackable    Feature = "non_attackable"
	Down             Feature = "down"
	Up               Feature = "up"
	Charge           Feature = "charge"
	EnerAttack       Feature = "ener_attack"
	Trash            Feature = "trash"
	Ener             Feature = "ener"
	PowerUp          Feature = "power_up"
	PowerDown        Feature = "power_down"
	Bounce           Feature = "bounce"
	DeckBounce       Feature = "deck_bounce"
	Salvage          Feature = "salvage"
	LifeBurst        Feature = "life_burst"
	Shadow           Feature = "shadow"
	Invulnerable     Feature = "invulnerable"
	OnSpell          Feature = "on_spell"
	OnArts           Feature = "on_arts"
	OnPiece          Feature = "on_piece"
	OnBanish         Feature = "on_banish"
	Banish           Feature = "banish"
	Guard            Feature = "guard"
	OnGuard          Feature = "on_guard"
	AttackNoEffect   Feature = "attack_no_effect"
	OnTouch          Feature = "on_touch"
	Awake            Feature = "awake"
	Exceed           Feature = "exceed"
	OnExceed         Feature = "on_exceed"
	AddLife          Feature = "add_life"
	OnBurst          Feature = "on_burst"
	LifeTrash        Feature = "life_trash"
	LifeCrush        Feature = "life_crush"
	Damage           Feature = "damage"
	OnLifeCrush      Feature = "on_life_crush"
	Position         Feature = "position"
	Vanilla          Feature = "vanilla"
	Untouchable      Feature = "untouchable"
	TopCheck         Feature = "top_check"
	BottomCheck      Feature = "bottom_check"
	Barrier          Feature = "barrier"
	MultiEner        Feature = "multi_ener"
	LrigTrash        Feature = "lrig_trash"
	Charm            Feature = "charm"
	Craft            Feature = "craft"
	Acce             Feature = "acce"
	Rise             Feature = "rise"
	Recollect        Feature = "recollect"
	SeekTop          Feature = "seek_top"
	EraseSkill       Feature = "erase_skill"
	CancelDamage     Feature = "cancel_damage"
	Reanimate        Feature = "reanimate"
	AdditionalAttack Feature = "additional_attack"
	UnGuardable      Feature = "un_guardable"
	SalvageSpell     Feature = "salvage_spell"
	BanishOnAttack   Feature = "banish_on_attack"
	Shoot            Feature = "shoot"
	LimitSigni       Feature = "limit_signi"
	FreeSpell        Feature = "free_spell"
	DualColorEner    Feature = "dual_color_ener"
	GainCoin         Feature = "gain_coin"
	BetCoin          Feature = "bet_coin"
	HandCost         Feature = "hand_cost"
	AssistCost       Feature = "assist_cost"
	Inherit          Feature = "inherit"
	PreventGrowCost  Feature = "prevent_grow_cost"
	PutSigniDefense  Feature = "put_signi_defense"
	PutSigniOffense  Feature = "put_signi_offense"
	Harmony          Feature = "harmony"
	MagicBox         Feature = "magic_box"
	Virus            Feature = "virus"
)

type featureDef struct {
	Feature Feature
	Label   string
	Word    int
	Bit     uint
}

// featureDefs is the append-only position table. Word 1 bit 37 is
// retired (held by a removed feature) and must never be reassigned.
var featureDefs = []featureDef{
	{DoubleCrush, "ダブルクラッシュ", 1, 1},
	{TripleCrush, "トリプルクラッシュ", 1, 2},
	{DiscardOpponent, "手札破壊", 1, 3},
	{RandomDiscard, "ランダム手札破壊", 1, 4},
	{Draw, "ドロー", 1, 5},
	{Assassin, "アサシン", 1, 6},
	{Freeze, "凍結", 1, 7},
	{Drop, "デッキドロップ", 1, 8},
	{OnDrop, "デッキドロップ時", 1, 9},
	{OnRefresh, "リフレッシュ時", 1, 10},
	{Lancer, "ランサー", 1, 11},
	{SLancer, "Sランサー", 1, 12},
	{RemoveSigni, "シグニ除外", 1, 13},
	{NonAttackable, "アタック不可", 1, 14},
	{Down, "ダウン", 1, 15},
	{Up, "アップ", 1, 16},
	{Charge, "エナチャージ", 1, 17},
	{EnerAttack, "エナ破壊", 1, 18},
	{Trash, "トラッシュ送り", 1, 19},
	{Ener, "エナ送り", 1, 20},
	{PowerUp, "パワーアップ", 1, 21},
	{PowerDown, "パワーダウン", 1, 22},
	{Bounce, "バウンス", 1, 23},
	{DeckBounce, "デッキバウンス", 1, 24},
	{Salvage, "回収", 1, 25},
	{LifeBurst, "ライフバースト", 1, 26},
	{Shadow, "シャドウ", 1, 27},
	{Invulnerable, "バニッシュされない", 1, 28},
	{OnSpell, "スペル使用時", 1, 29},
	{OnArts, "アーツ使用時", 1, 30},
	{OnPiece, "ピース使用時", 1, 31},
	{OnBanish, "バニッシュした時", 1, 32},
	{Banish, "バニッシュ", 1, 33},
	{Guard, "ガード", 1, 34},
	{OnGuard, "ガードした時", 1, 35},
	{AttackNoEffect, "アタック無効", 1, 36},
	{OnTouch, "対象になった時", 1, 38},
	{Awake, "覚醒", 1, 39},
	{Exceed, "エクシード", 1, 40},
	{OnExceed, "エクシードした時", 1, 41},
	{AddLife, "ライフクロス追加", 1, 42},
	{OnBurst, "ライフバースト発動時", 1, 43},
	{LifeTrash, "ライフクロストラッシュ送り", 1, 44},
	{LifeCrush, "クラッシュ", 1, 45},
	{Damage, "ダメージ", 1, 46},
	{OnLifeCrush, "クラッシュ時", 1, 47},
	{Position, "シグニゾーン移動", 1, 48},
	{Vanilla, "能力を持たない", 1, 49},
	{Untouchable, "効果を受けない", 1, 50},
	{TopCheck, "トップ確認", 1, 51},
	{BottomCheck, "ボトム確認", 1, 52},
	{Barrier, "バリア獲得", 1, 53},
	{MultiEner, "マルチエナ", 1, 54},
	{LrigTrash, "ルリグトラッシュ", 1, 55},
	{Charm, "チャーム", 1, 56},
	{Craft, "クラフト", 1, 57},
	{Acce, "アクセ", 1, 58},
	{Rise, "ライズ", 1, 59},
	{Recollect, "リコレクト", 1, 60},
	{SeekTop, "シーク", 1, 61},
	{EraseSkill, "能力消去", 1, 62},
	{CancelDamage, "ダメージ無効", 2, 1},
	{Reanimate, "トラッシュ場出し", 2, 2},
	{AdditionalAttack, "追加アタック", 2, 3},
	{UnGuardable, "ガード不可", 2, 4},
	{SalvageSpell, "スペル回収", 2, 5},
	{BanishOnAttack, "アタック時バニッシュ", 2, 6},
	{Shoot, "シュート", 2, 7},
	{LimitSigni, "配置禁止", 2, 8},
	{FreeSpell, "スペル割引", 2, 9},
	{DualColorEner, "多色エナ", 2, 10},
	{GainCoin, "コイン獲得", 2, 11},
	{BetCoin, "ベット", 2, 12},
	{HandCost, "手札コスト", 2, 13},
	{AssistCost, "アシストダウン", 2, 14},
	{Inherit, "ルリグ能力継承", 2, 15},
	{PreventGrowCost, "グロウコスト軽減", 2, 16},
	{PutSigniDefense, "ブロッカー場出し", 2, 17},
	{PutSigniOffense, "シグニ場出し", 2, 18},
	{Harmony, "ハーモニー", 2, 19},
	{MagicBox, "マジックボックス", 2, 20},
	{Virus, "ウィルス", 2, 21},
}

var (
	featureIndex   = make(map[Feature]featureDef, len(featureDefs))
	featureByLabel = make(map[string]Feature, len(featureDefs))
)

func init() {
	for _, d := range featureDefs {
		featureIndex[d.Feature] = d
		featureByLabel[d.Label] = d.Feature
	}
}

// Label returns the human-facing display name for f, or the raw
// identifier when f is not part of the vocabulary.
func (f Feature) Label() string {
	if d, ok := featureIndex[f]; ok {
		return d.Label
	}
	return string(f)
}

// All returns every feature in position order.
func All() []Feature {
	out := make([]Feature, len(featureDefs))
	for i, d := range featureDefs {
		out[i] = d.Feature
	}
	return out
}
