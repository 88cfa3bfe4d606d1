package analyzer

import "github.com/hkawai/cardfeature/internal/feature"

// DefaultPatternTable builds the production rule catalog. Patterns are
// written in normalized (half-width) form since the table only ever
// sees normalized text.
//
// Rewrite rules collapse reminder text into short markers so the
// processed text stays compact for display and later passes; detect
// rules tag ability phrases without touching the text. Detection is
// non-exclusive and a rule may emit several tags at once.
func DefaultPatternTable() (*PatternTable, error) {
	rules := []Rule{
		// Quotation chrome around ability blocks is stripped entirely.
		Rewrite(`『`, ""),
		Rewrite(`』`, ""),
		Rewrite(`ライフバースト:`, "LB:", feature.LifeBurst),

		// Parenthesized reminder texts.
		Rewrite(`\(対戦相手のライフクロスが1枚以上ある場合、ライフクロス1枚をクラッシュし、0枚の場合、あなたはゲームに勝利する\)`, "*DAMAGE*", feature.Damage),
		Rewrite(`\(パワーが0以下のシグニはルールによってバニッシュされる\)`, "*RULE BANISH POWER ZERO*", feature.PowerDown),
		Rewrite(`\(アタックによるダメージでライフクロスを2枚クラッシュする\)`, "*DOUBLE CRUSH*", feature.DoubleCrush),
		Rewrite(`\(【アサシン】を持つシグニがアタックすると正面のシグニとバトルをせず対戦相手にダメージを与える。【ダブルクラッシュ】を持つシグニがアタックによってダメージを与えた場合ライフクロスを1枚ではなく2枚クラッシュする\)`, "*DOUBLE CRUSH && ASSASSIN*"),
		Rewrite(`\(【ランサー】を持つシグニがバトルでシグニをバニッシュしたとき、対戦相手のライフクロスを1枚クラッシュする\)`, "*LANCER*", feature.Lancer),
		Rewrite(`\(【Sランサー】を持つシグニがバトルでシグニをバニッシュしたとき、対戦相手のライフクロスがある場合はそれを1枚クラッシュする。無い場合は対戦相手にダメージを与える\)`, "*S LANCER*", feature.SLancer),
		Rewrite(`\(このカードを手札から捨てることで、ルリグのアタックによるダメージを一度防ぐ\)`, "*GUARD*", feature.Guard),
		Rewrite(`\(《ガードアイコン》を持つシグニは【ガード】を得る\)`, "*GUARD*", feature.Guard),
		Rewrite(`\(【チャーム】は裏向きでシグニに付き、1体に1枚までしか付けられない\)`, "*CHARM*", feature.Charm),
		Rewrite(`\(【アクセ】はシグニ1体に1枚までしか付けられない。このクラフトが付いているシグニが場を離れるとこのクラフトはゲームから除外される\)`, "*ACCE*", feature.Acce),
		Rewrite(`\(【ウィルス】と同じシグニゾーンにあるシグニは感染状態である\)`, "*VIRUS*", feature.Virus),
		Rewrite(`\(このシグニが場に出たとき、あなたのアップ状態の.+をダウンしないかぎり、これをダウンする\)`, "*HARMONY*", feature.Harmony),
		Rewrite(AnyNum(`\(あなたのルリグの下からカードを合計`, `枚ルリグトラッシュに置く\)`), "*EXCEED*", feature.Exceed),
		Rewrite(`\(シグニは覚醒すると場にあるかぎり覚醒状態になる\)`, "*AWAKE*", feature.Awake),
		Rewrite(`\(凍結された(?:ルリグ|シグニ)は次の自分のアップフェイズにアップしない\)`, "*FROZEN*", feature.Freeze),
		Rewrite(`\(凍結されたルリグとシグニは次の自分のアップフェイズにアップしない\)`, "*FROZEN*", feature.Freeze),
		Rewrite(`\(【マジックボックス】はシグニゾーン1つにつき1つまで裏向きで設置できる\)`, "*MAGIC BOX*", feature.MagicBox),
		Rewrite(`\(このクラフトは効果以外によっては場に出せない\)`, "*NO STANDARD PUT*", feature.Craft),
		Rewrite(`\(このスペルはあなたのメインフェイズにルリグデッキから使用できる\)`, "*SPELL CRAFT*", feature.Craft),
		Rewrite(`\(クラフトであるスペルは、使用後にゲームから除外される\)`, "*SPELL CRAFT GOES REMOVED*", feature.Craft),
		Rewrite(`\(2枚以下の場合、それらをすべて選ぶ\)`, "*TARGET ALL OVER*"),
		Rewrite(`\(複数の【出】能力は好きな順番で発動できる\)`, "*MULTIPLE CIP*"),
		Rewrite(`\(この条件を満たさなければ場に出せない\)`, "*RISE LIMITATION*"),
		Rewrite(`\(この能力はこのカードがトラッシュにある場合にしか使用できない\)`, "*ONLY AVAILABLE IN TRASH*"),
		Rewrite(`\(シグニの下に置かれたカードは、そのシグニが場を離れるとルールによってトラッシュに置かれる\)`, "*GO TO TRASH TOGETHER*"),
		Rewrite(AnyNum(`\(デッキが`, `枚以下の場合は置き換えられない\)`), "*FEATURE LIMIT DECK DROP*"),
		Rewrite(`\(ピースはあなたの場にルリグが3体いないと使用できない\)`, "*COMMON PIECE*"),
		Rewrite(`\(あなたの場にいるルリグ3体がこの条件を満たす\)`, "*TEAM*"),
		Rewrite(`\(このスペルを使用する際、使用コストとして追加で.+を支払ってもよい\)`, "*BET*"),
		Rewrite(`\(シグニのパワーを計算する場合、先に基本パワーを適用してプラスやマイナスをする\)`, "*CALC ORDER*"),
		Rewrite(`\(ゲームを開始する際に、このルリグを表向きにしたとき、このルリグがセンタールリグであるなら、[《コインアイコン》]+を得る\)`, "*GAIN COINS ON START*", feature.GainCoin),
		Rewrite(`\(右下に【コイン】を持つルリグがグロウしたとき、それと同じ枚数の[《コインアイコン》]+を得る\)`, "*GAIN COINS ON GROW*", feature.GainCoin),
		Rewrite(`\(プレイヤーが保持できる《コインアイコン》の上限は5枚である\)`, "*COIN LIMIT*"),
		Rewrite(AnyNum(`\(あなたのルリグトラッシュに`, `枚以上のアーツがあるかぎり《リコレクトアイコン》に続く文章が有効になる\)`), "*RECOLLECT*", feature.Recollect),

		// Keyword icons.
		Detect(`【ウィルス】`, feature.Virus),
		Detect(`【ハーモニー】`, feature.Harmony),
		Detect(`【マジックボックス】`, feature.MagicBox),
		Detect(`【ダブルクラッシュ】`, feature.DoubleCrush),
		Detect(`【トリプルクラッシュ】`, feature.TripleCrush),
		Detect(`【アサシン】`, feature.Assassin),
		Detect(`【シャドウ】`, feature.Shadow),
		Detect(`【ガード】`, feature.Guard),
		Detect(`【チャーム】`, feature.Charm),
		Detect(`【バリア】`, feature.Barrier),
		Detect(`【ライズ】あなたの`, feature.Rise),
		Detect(`【マルチエナ】`, feature.MultiEner),
		Detect(`Sランサー`, feature.SLancer, feature.Lancer),
		Detect(`ランサー`, feature.Lancer),
		Detect(AnyNum(`エクシード`, ``), feature.Exceed),
		Detect(`リコレクトアイコン`, feature.Recollect),
		Detect(`アクセ`, feature.Acce),
		Detect(`ベット―`, feature.BetCoin),
		Detect(`コインアイコン》:`, feature.BetCoin),

		// Ability phrases.
		Detect(`バニッシュされない`, feature.Invulnerable),
		Detect(`バニッシュしたとき`, feature.OnBanish),
		Detect(`バニッシュ`, feature.Banish),
		Detect(`凍結する`, feature.Freeze),
		Detect(`シグニをアップ`, feature.Up),
		Detect(AnyNum(`シグニ`, `体を対象とし、(?:それ|それら)をアップ`), feature.Up),
		Detect(AnyNum(`シグニ`, `体(?:まで|を)対象とし、(?:それ|それら)をダウン`), feature.Down),
		Detect(AnyNum(`カードを`, `枚引`), feature.Draw),
		Detect(AnyNum(`デッキの上からカードを`, `枚トラッシュに置`), feature.Drop),
		Detect(AnyNum(`対戦相手のシグニ`, `体を対象とし、それをゲームから除外する`), feature.RemoveSigni),
		Detect(AnyNum(`対戦相手のシグニを`, `体(?:まで|を)対象とし、(?:それら|それ)をエナゾーンに置`), feature.Ener),
		Detect(`対戦相手のすべてのシグニをエナゾーンに置`, feature.Ener),
		Detect(AnyNum(`対戦相手のシグニ`, `体(?:まで|を)対象とし、(?:それら|それ)を手札に戻`), feature.Bounce),
		Detect(`デッキの一番下に置`, feature.DeckBounce),
		Detect(AnyNum(`ライフクロス`, `枚をトラッシュに置`), feature.LifeTrash),
		Detect(AnyNum(`エナゾーンからカード`, `枚(?:を|選び).+トラッシュに置`), feature.EnerAttack),
		Detect(AnyNum(`対戦相手のエナゾーンからカードを`, `枚まで対象とし、それらを手札に戻`), feature.EnerAttack),
		Detect(`ルリグトラッシュに置`, feature.LrigTrash),
		Detect(`ライフクロスに加える`, feature.AddLife),
		Detect(`ライフクロスを1枚クラッシュする`, feature.LifeCrush),
		Detect(`対戦相手のライフクロス1枚をクラッシュする`, feature.LifeCrush),
		Detect(`対戦相手にダメージを与える`, feature.Damage),
		Detect(`クラッシュしたとき、`, feature.OnLifeCrush),
		Detect(`クラッシュされ(?:る場合|たとき|るかトラッシュ|ていた場合)、`, feature.OnLifeCrush),
		Detect(AnyNum(``, `枚見`), feature.SeekTop),
		Detect(`のシグニは能力を失う`, feature.EraseSkill),
		Detect(`それは能力を失う`, feature.EraseSkill),
		Detect(AnyNum(`シグニを`, `体(?:まで|を)対象とし、ターン終了時まで、それは能力を失う`), feature.EraseSkill),
		Detect(`それを《サーバント ZERO》にする`, feature.EraseSkill),
		Detect(`アタックできない`, feature.NonAttackable),
		Detect(`(?:シグニ|それ|それら)のパワーを\+`, feature.PowerUp),
		Detect(`このシグニのパワーは\+`, feature.PowerUp),
		Detect(`(?:シグニ|それ|それら)のパワーを-`, feature.PowerDown),
		Detect(`ダメージを受けない`, feature.CancelDamage),
		Detect(`トラッシュからシグニ.+手札に加え`, feature.Salvage),
		Detect(`トラッシュからスペル.+手札に加え`, feature.SalvageSpell),
		Detect(AnyNum(`スペル`, `枚をコストを支払わずに使用する`), feature.FreeSpell),
		Detect(AnyNum(`手札を`, `枚捨ててもよい`), feature.HandCost),
		Detect(AnyNum(`対戦相手は手札を`, `枚捨てる`), feature.DiscardOpponent),
		Detect(`無作為に.+捨てる`, feature.RandomDiscard),
		Detect(`エナチャージ`, feature.Charge),
		Detect(AnyNum(`カードを`, `枚までエナゾーンに置`), feature.Charge),
		Detect(`ガードできない`, feature.UnGuardable),
		Detect(`ガードしたとき`, feature.OnGuard),
		Detect(`スペルを使用したとき`, feature.OnSpell),
		Detect(`アーツを使用したとき`, feature.OnArts),
		Detect(`ピースを使用したとき`, feature.OnPiece),
		Detect(`リフレッシュしたとき`, feature.OnRefresh),
		Detect(`デッキからトラッシュに置かれたとき`, feature.OnDrop),
		Detect(`対象になったとき`, feature.OnTouch),
		Detect(`ライフバーストが発動したとき`, feature.OnBurst),
		Detect(`エクシードしたとき`, feature.OnExceed),
		Detect(`エナゾーンに置かれる代わりにトラッシュに置`, feature.Shoot),
		Detect(`トラッシュから.+場に出`, feature.Reanimate),
		Detect(AnyNum(`シグニを`, `枚まで対象とし、それを場に出す`), feature.PutSigniOffense),
		Detect(`それらの場所を入れ替え`, feature.Position),
		Detect(`場に出すことができない`, feature.LimitSigni),
		Detect(`効果を受けない`, feature.Untouchable),
		Detect(`能力を持たない`, feature.Vanilla),
		Detect(`デッキの一番上のカードを見`, feature.TopCheck),
		Detect(`デッキの一番下のカードを見`, feature.BottomCheck),
		Detect(`覚醒`, feature.Awake),
	}

	bursts := []BurstRule{
		BurstDetect(AnyNum(`カードを`, `枚引`), feature.BurstDraw),
		BurstDetect(AnyNum(`カードを`, `枚までエナゾーンに置`), feature.BurstCharge),
		BurstDetect(`エナチャージ`, feature.BurstCharge),
		BurstDetect(`手札に加え`, feature.BurstSalvage),
		BurstDetect(`バニッシュ`, feature.BurstBanish),
		BurstDetect(`ダウンする`, feature.BurstDown),
		BurstDetect(`凍結する`, feature.BurstFreeze),
		BurstDetect(`手札に戻`, feature.BurstBounce),
		BurstDetect(`デッキの一番下に置`, feature.BurstDeckBounce),
		BurstDetect(`パワーを-`, feature.BurstPowerDown),
		BurstDetect(`ダメージを与える`, feature.BurstDamage),
		BurstDetect(`ガードする`, feature.BurstGuard),
		BurstDetect(`ライフクロスに加える`, feature.BurstAddLife),
		BurstDetect(`トラッシュに置`, feature.BurstTrash),
		BurstDetect(`捨てる`, feature.BurstDiscard),
	}

	return NewPatternTable(rules, bursts)
}
