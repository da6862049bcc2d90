package catalog

import "github.com/kotonoha/days/internal/types"

// CharacterOrder lists character ids in presentation order.
var CharacterOrder = []string{"reina", "akane", "shiori"}

// Characters are the three dateable characters, keyed by id.
var Characters = map[string]*types.Character{
	"reina": {
		ID:    "reina",
		Name:  "神崎 レイナ",
		Grade: 3,
		PositiveTags: []string{
			"Game", "Anime", "Indoor", "Night", "Fun", "Romance", "Cute",
			"Compliment", "Secret", "Sweet", "Cat", "Future", "Slang", "Date",
		},
		NegativeTags: []string{
			"Sports", "Crowd", "Morning", "Boring", "Study", "Crowded", "Loud",
		},
		Description:  "腰まで届く艶やかな黒髪と、神秘的な紫の瞳を持つ美少女。一見クールで近寄りがたい雰囲気だが、心を許した相手には不器用な優しさを見せる。",
		VisualTraits: "Long black hair, straight, violet eyes, sharp look, black ribbon hair accessory, stylish wear",
		Secrets: []string{
			"実は恋愛シミュレーションゲームにハマっている",
			"可愛いぬいぐるみを集めている",
			"素直になれない自分に悩んでいる",
		},
		Worries: []string{
			"卒業後の進路が決まっていない",
			"本当の自分を周りに見せられない",
			"このままずっと一人なんじゃないかという不安",
		},
		HobbiesDetail: "深夜アニメの実況、レトロゲーム収集、猫カフェ巡り",
		Tone:          "ツンデレ",
		Combos: [][]string{
			{"ctx_game", "act4"}, {"rom1", "v_trust"}, {"ctx_anime", "act3"}, {"sl1", "sl3"},
		},
		WaitingMessages:  waitingQuestions["reina"],
		MeetingStory:     "4月の始業式の日、遅刻ギリギリで廊下を走っていた時にぶつかってしまったのが出会い。",
		FallbackImageURL: "https://images.unsplash.com/photo-1544005313-94ddf0286df2?q=80&w=600&auto=format&fit=crop",
		Height:           "162cm",
		Birthday:         "11月15日",
		BloodType:        "A型",
	},
	"akane": {
		ID:    "akane",
		Name:  "日向 アカネ",
		Grade: 2,
		PositiveTags: []string{
			"Sports", "Outdoor", "Active", "Morning", "Food", "Sea", "Energy",
			"Fun", "Action", "Future", "Strong", "Summer", "Meat", "Swim",
		},
		NegativeTags: []string{
			"Study", "Indoor", "Boring", "Mystery", "Night", "Quiet", "Negative", "Weak",
		},
		Description:  "明るい茶色のショートカットが似合う、活発なスポーツ少女。少し日焼けした肌と琥珀色の瞳がチャームポイント。",
		VisualTraits: "Short brown hair, energetic smile, amber eyes, slightly tanned skin, sporty look, band-aid on cheek",
		Secrets: []string{
			"実は怪談がすごく苦手",
			"料理が壊滅的に下手",
			"足を怪我してタイムが伸び悩んでいる",
		},
		Worries: []string{
			"部活の記録が伸びない",
			"ガサツだと思われていないか心配",
			"勉強がついていけない",
		},
		HobbiesDetail: "朝のランニング、食べ歩き、スニーカー収集",
		Tone:          "元気、活発",
		Combos: [][]string{
			{"sch3", "act4"}, {"ctx_sea", "act1"}, {"rom6", "v_support"}, {"sl6", "act2"},
		},
		WaitingMessages:  waitingQuestions["akane"],
		MeetingStory:     "5月の体育祭の練習中、準備体操をサボっていたところを彼女に見つかり、無理やり一緒に走らされたのがきっかけ。",
		FallbackImageURL: "https://images.unsplash.com/photo-1517841905240-472988babdf9?q=80&w=600&auto=format&fit=crop",
		Height:           "158cm",
		Birthday:         "7月20日",
		BloodType:        "O型",
	},
	"shiori": {
		ID:    "shiori",
		Name:  "月島 シオリ",
		Grade: 1,
		PositiveTags: []string{
			"Study", "Book", "Indoor", "Quiet", "Cat", "Art", "Gentle", "Mystery",
			"Memory", "Serious", "Library", "Tea", "Winter", "Tradition",
		},
		NegativeTags: []string{
			"Sports", "Loud", "Crowd", "Active", "Sea", "Energy", "Funny", "Scary", "Slang",
		},
		Description:  "透き通るような銀髪のボブカットと、知的な眼鏡が印象的な図書委員。内気で物静かな性格。",
		VisualTraits: "Silver bob hair, glasses, blue eyes, shy expression, holding a book, petite, gentle look",
		Secrets: []string{
			"ネットで小説を書いている",
			"眼鏡を外すと美人",
			"実は大胆な妄想癖がある",
		},
		Worries: []string{
			"人と話すのが苦手で友達が少ない",
			"自分の作品に自信が持てない",
			"先輩（プレイヤー）に釣り合わないと思っている",
		},
		HobbiesDetail: "読書、小説執筆、紅茶を淹れること",
		Tone:          "内気、丁寧",
		Combos: [][]string{
			{"ctx_book", "act5"}, {"ctx_music", "v_feel"}, {"rom8", "v_promise"}, {"sch6", "rom9"},
		},
		WaitingMessages:  waitingQuestions["shiori"],
		MeetingStory:     "図書室の奥まった席で、高いところにある本を取れずに困っていた彼女を助けたのが最初の出会い。",
		FallbackImageURL: "https://images.unsplash.com/photo-1534528741775-53994a69daeb?q=80&w=600&auto=format&fit=crop",
		Height:           "154cm",
		Birthday:         "2月28日",
		BloodType:        "AB型",
	},
}

var waitingQuestions = map[string][]string{
	"reina": {
		"……ねえ、アンタは私のこと、どう思ってるの？",
		"べ、別にアンタのこと待ってたわけじゃないんだからね。",
		"退屈なんだけど。なんか面白い話ないわけ？",
		"……私の顔に何かついてる？ ジロジロ見ないでよ。",
		"ふん、次はアンタが何言うか、当ててあげよっか？",
		"ねえ、今度の休みって空いてる？ ……聞いてみただけよ。",
		"アンタって、好きなタイプとかあるわけ？",
		"……はぁ。なんか甘いものでも食べたい気分。",
		"ねえ、私の新しい髪飾り、気づかない？ ……鈍感。",
		"アンタ、他の女子ともそんな風に話すの？",
		"……ちょっと、こっち来なさいよ。話があるの。",
		"ねえ、もし世界が終わるとしたら、最後に何食べる？",
	},
	"akane": {
		"ねえねえ！ 今度の休み、私と一緒にどっか行かない？",
		"あーあ、体動かしたいなー！ 競争しよっか？",
		"キミってさ、私のこと……どういう風に見てる？",
		"お腹すいたー！ 購買のパン、一緒に買いに行かない？",
		"じーっ……あはは、顔赤いよ？ どうしたの？",
		"ねえ、悩み事とかない？ 私でよければ聞くよ！",
		"今度、部活の試合あるんだ！ 応援に来てくれる？",
		"キミって意外と力持ち？ 腕相撲しよっか！",
		"あー！ アイス食べたい！ コンビニ行こうよ！",
		"ねえ、私のいいところってどこだと思う？",
		"キミと一緒にいると、なんかワクワクするんだよね！",
		"スポーツとか見るの好き？ 私、観戦も好きなんだ！",
	},
	"shiori": {
		"あの……先輩は、どんな本が好きなんですか？",
		"……先輩といっしょにいると、なんだか落ち着きます。",
		"その……私のこと、迷惑じゃ……ないですか？",
		"あっ、今、猫の声が聞こえたような気がします……。",
		"……先輩のこと、もっと知りたいなって、思ってます……。",
		"……先輩は、休日とかは何をされているんですか？",
		"おすすめの本があるんです。……読んでくれませんか？",
		"……あの、眼鏡、変じゃないですか？",
		"先輩は、静かな場所と賑やかな場所、どっちが好きですか？",
		"……もしよかったら、今度……いえ、なんでもないです。",
		"……私、先輩の役に立てていますか？",
		"……先輩の笑顔を見ると、なんだか安心します。",
	},
}

// Situations are the narration lines shown when the player runs into a
// character at a location. The empty LocationID key is the default pool.
var Situations = map[string]map[types.LocationID][]string{
	"reina": {
		"": {
			"レイナは腕を組んで、何か考え事をしているようだ。",
			"レイナがスマホをいじりながら、小さくため息をついている。",
			"レイナと目が合ったが、すぐにそらされてしまった。",
			"「……何？ 私に用？」レイナが不機嫌そうにこちらを見た。",
			"レイナは髪をいじりながら、こちらをチラチラ見ている。",
			"ふと視線を感じて振り返ると、レイナがこちらを見ていた。",
			"レイナは手鏡を取り出して、前髪を気にしている。",
			"「……別に、アンタを待ってたわけじゃないから。」",
			"レイナが足でリズムをとっている。少しイライラしているようだ。",
			"遠くでレイナが誰かと話しているのが見えた。",
		},
		types.LocClassroom: {
			"教室の窓際で、レイナが退屈そうに外を眺めている。",
			"レイナが机に突っ伏して寝たふりをしている。",
			"友達と話していたレイナが、こちらに気づいて口をつぐんだ。",
			"「……うるさいわね、教室くらい静かにできないの？」",
			"レイナは教科書を開いているが、目は全く動いていない。",
			"放課後の教室に一人、レイナが残っていた。",
			"「……まだ帰らないの？ 変なヤツ。」",
			"レイナが黒板の落書きを消している。",
			"教室の隅でレイナがこっそりゲーム機を触っていた。",
			"「あ、アンタ。……宿題、見せてくれない？」",
		},
		types.LocCorridor: {
			"廊下の角で、急いで歩いてきたレイナと鉢合わせた。",
			"レイナが廊下の手すりに寄りかかって、校庭を見下ろしている。",
			"「……邪魔。そこ退いて。」",
			"自販機の前で、レイナが飲み物を買うか迷っている。",
			"廊下の向こうからレイナが歩いてくる。目が合うと逸らされた。",
			"レイナが先生に呼び止められて、面倒くさそうにしている。",
			"掲示板の前でレイナが何かを確認している。",
			"「……今のチャイム、予鈴？ 本鈴？」",
		},
		types.LocRooftop: {
			"風に吹かれながら、レイナがフェンス越しに遠くを見ている。",
			"「……ここなら静かだと思ったのに。アンタも来たの？」",
			"レイナが空を見上げて、何かを口ずさんでいる。",
			"「……サボり？ 私も似たようなものだけど。」",
			"屋上のベンチで、レイナが目を閉じて日向ぼっこをしている。",
			"「……空が青すぎて、なんかムカつく。」",
			"レイナのスカートが風になびいている。",
			"「……ここ、私の特等席なんだけど。」",
		},
	},
	"akane": {
		"": {
			"「あ、見っけ！ おーい！」アカネが大きく手を振っている。",
			"アカネがスキップしながらこちらに向かってきた。",
			"アカネはストレッチをしている。いつも元気だ。",
			"「ねえねえ、ちょっと聞いてよ！」",
			"アカネが何かを食べている。幸せそうな顔だ。",
			"「よっ！ 調子はどう？」アカネが背中を叩いてきた。",
			"アカネが鼻歌を歌いながら歩いている。",
			"「あー、暇だなー！ 何か面白いことない？」",
			"アカネが靴紐を結び直している。",
			"遠くからアカネの笑い声が聞こえてきた。",
		},
		types.LocClassroom: {
			"アカネが教室の後ろで、クラスメイトと騒いでいる。",
			"「お腹すいたー！ 早弁しちゃおっかな？」",
			"アカネが机の上でバランスをとろうとしている。",
			"「宿題やった？ 私、全然やってない！」",
			"アカネが掃除用具をマイクにして歌っている。",
			"「あ、消しゴム貸して！ 落としちゃってさー。」",
			"休み時間の教室で、アカネが腕相撲大会を開いている。",
			"「次の授業、移動教室だっけ？ 忘れてた！」",
			"アカネが窓から顔を出して、外の部活に声をかけている。",
			"「ねえ、私の席どこだっけ？ ……冗談だよ！」",
		},
		types.LocGym: {
			"体育館中に、バッシュのスキール音とアカネの声が響いている。",
			"「ナイスパス！」アカネが汗を拭いながら叫んだ。",
			"アカネがバスケットボールを指で回している。",
			"「あ、見てた？ 今のシュート、すごくなかった？」",
			"アカネが床に座り込んで、水分補給をしている。",
			"「一緒にバスケやろうよ！ 人数が足りないんだ！」",
			"体育館の隅で、アカネが筋トレをしている。",
			"「ふー、いい汗かいたー！」",
		},
	},
	"shiori": {
		"": {
			"シオリは本に夢中で、こちらに気づいていない。",
			"「あ……先輩。こんにちは。」シオリが小さく会釈した。",
			"シオリが何かをメモしている。真剣な表情だ。",
			"シオリはビクッとして、本を胸に抱きしめた。",
			"「……あの、私の顔に何かついていますか？」",
			"シオリが遠くを見つめて、ぼーっとしている。",
			"「……あっ、すみません。考え事をしていて……。」",
			"シオリの周りだけ、時間がゆっくり流れているようだ。",
			"シオリが小さな声で独り言を言っている。",
			"足元に落ちたしおりを、シオリが拾おうとしている。",
		},
		types.LocClassroom: {
			"騒がしい教室の中で、シオリだけが静かに本を読んでいる。",
			"「……次の授業の予習をしています。」",
			"シオリが日直の仕事を一人でこなしている。",
			"「……先輩、教科書を忘れましたか？ 見せましょうか？」",
			"教室の隅で、シオリが窓の外の鳥を目で追っている。",
			"「……あまり大きな声は、苦手です。」",
			"シオリが机の中を整理している。",
			"「……教室は、少し落ち着きません。」",
			"休み時間、シオリは誰とも話さずに座っている。",
			"「……あ、先輩。……いえ、なんでもないです。」",
		},
		types.LocLibrary: {
			"シオリが高い棚の本を取ろうとして、背伸びをしている。",
			"「……静かにしてください。ここは図書室です。」",
			"シオリがカウンターで貸出の処理をしている。",
			"窓際で読書をしているシオリの横顔が綺麗だ。",
			"「……この本、先輩も好きなんですか？」",
			"図書室の独特な紙の匂いの中に、シオリがいる。",
			"「……新しい本が入りましたよ。読みますか？」",
			"シオリが本の整理をしながら、楽しそうに微笑んでいる。",
			"「……ここは、私の聖域なんです。」",
			"「先輩も、本を読むのが好きなんですね。」",
		},
	},
}

// Feelings describe, per character, what they say about the
// relationship at each affection range.
var Feelings = map[string][]types.FeelingRange{
	"reina": {
		{Low: -500, High: -250, Messages: []string{"正直、顔も見たくないんだけど。", "アンタとは合わないみたいね。"}},
		{Low: -249, High: 0, Messages: []string{"……ふーん。", "別に、普通だけど。"}},
		{Low: 1, High: 200, Messages: []string{"……悪くないんじゃない？", "アンタと話すの、意外と嫌いじゃないかも。"}},
		{Low: 201, High: 399, Messages: []string{"……ねえ、次はいつ会えるの？", "アンタのこと、もっと知りたいって思う。"}},
		{Low: 400, High: 500, Messages: []string{"……大好き。言わせないでよ、バカ。", "アンタなしじゃ、もうダメかも。"}},
	},
	"akane": {
		{Low: -500, High: -250, Messages: []string{"うーん、ちょっと合わないかも。", "キミとはリズムが狂っちゃうな。"}},
		{Low: -249, High: 0, Messages: []string{"んー、まあまあかな？", "元気？ 調子はどう？"}},
		{Low: 1, High: 200, Messages: []string{"キミといると楽しいね！", "今度、競争しよっか！"}},
		{Low: 201, High: 399, Messages: []string{"キミに会うと、元気が出るの！", "ねえねえ、次はどこ行く？"}},
		{Low: 400, High: 500, Messages: []string{"キミのこと、愛してる！", "世界一のカップルになろうよ！"}},
	},
	"shiori": {
		{Low: -500, High: -250, Messages: []string{"……近寄らないでください。", "怖いです……。"}},
		{Low: -249, High: 0, Messages: []string{"……あ、こんにちは。", "……本を読んでいます。"}},
		{Low: 1, High: 200, Messages: []string{"……先輩とお話しするの、少し楽しいです。", "この本、先輩におすすめです。"}},
		{Low: 201, High: 399, Messages: []string{"……先輩のこと、考えてばかりいます。", "もっと、先輩の声が聞きたいです。"}},
		{Low: 400, High: 500, Messages: []string{"……愛しています、先輩。", "私、先輩なしでは生きられません。"}},
	},
}

// SituationsFor returns the narration pool for a character at a
// location, falling back to the character's default pool.
func SituationsFor(characterID string, loc types.LocationID) []string {
	byLoc, ok := Situations[characterID]
	if !ok {
		return nil
	}
	if lines := byLoc[loc]; len(lines) > 0 {
		return lines
	}
	return byLoc[""]
}

// FeelingFor returns a relationship line matching the current affection
// score, or "……" when no range matches.
func FeelingFor(characterID string, affection int) string {
	for _, r := range Feelings[characterID] {
		if affection >= r.Low && affection <= r.High && len(r.Messages) > 0 {
			return r.Messages[pickIndex(affection, len(r.Messages))]
		}
	}
	return "……"
}

// pickIndex derives a stable index from the score so the same affection
// value always shows the same line.
func pickIndex(affection, n int) int {
	idx := affection % n
	if idx < 0 {
		idx += n
	}
	return idx
}
