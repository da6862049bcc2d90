// Package catalog holds the static game data: the word-card database,
// character profiles, locations, and the school-year event sequence.
// Catalog entries are never mutated at runtime.
package catalog

import "github.com/kotonoha/days/internal/types"

func card(id, text string, typ types.CardType, rarity int, tags ...string) types.Card {
	return types.Card{ID: id, Base: id, Text: text, Type: typ, Tags: tags, Rarity: rarity}
}

// ResponseCards are the guaranteed yes/no/wait cards for answering a
// direct question.
var ResponseCards = []types.Card{
	card("resp_yes", "はい", types.CardAuxVerb, 1, "Response", "Positive", "Agreement"),
	card("resp_yeah", "うん", types.CardAuxVerb, 1, "Response", "Positive", "Agreement", "Casual"),
	card("resp_ok", "わかった", types.CardAuxVerb, 1, "Response", "Positive", "Accept"),
	card("resp_nice", "いいね", types.CardAdjective, 1, "Response", "Positive", "Praise"),
	card("resp_no", "いいえ", types.CardAuxVerb, 1, "Response", "Negative", "Denial"),
	card("resp_nah", "いや", types.CardAuxVerb, 1, "Response", "Negative", "Denial", "Casual"),
	card("resp_cant", "無理", types.CardAdjective, 1, "Response", "Negative", "Denial"),
	card("resp_wait", "待って", types.CardVerb, 1, "Response", "Wait"),
	card("resp_think", "考えさせて", types.CardVerb, 1, "Response", "Wait"),
}

// ContextNouns are conversation-topic nouns mixed into response hands.
var ContextNouns = []types.Card{
	card("ctx_movie", "映画", types.CardNoun, 2, "Hobby", "Culture"),
	card("ctx_book", "本", types.CardNoun, 2, "Hobby", "Culture", "Book"),
	card("ctx_game", "ゲーム", types.CardNoun, 2, "Hobby", "Play"),
	card("ctx_music", "音楽", types.CardNoun, 2, "Hobby", "Culture"),
	card("ctx_manga", "漫画", types.CardNoun, 2, "Hobby", "Subculture"),
	card("ctx_oshi", "推し", types.CardNoun, 2, "Hobby", "Subculture", "Love"),
	card("ctx_anime", "アニメ", types.CardNoun, 2, "Hobby", "Subculture"),
	card("ctx_cafe", "カフェ", types.CardNoun, 2, "Place", "Food", "Drink"),
	card("ctx_ramen", "ラーメン", types.CardNoun, 2, "Food", "Meal"),
	card("ctx_curry", "カレー", types.CardNoun, 2, "Food", "Meal"),
	card("ctx_sweets", "スイーツ", types.CardNoun, 2, "Food", "Snack", "Sweet"),
	card("ctx_sea", "海", types.CardNoun, 2, "Place", "Nature", "Travel", "Sea"),
	card("ctx_park", "公園", types.CardNoun, 2, "Place", "Nature"),
	card("ctx_karaoke", "カラオケ", types.CardNoun, 2, "Place", "Play"),
	card("ctx_onsen", "温泉", types.CardNoun, 2, "Place", "Travel", "Relax"),
	card("ctx_kyoto", "京都", types.CardNoun, 2, "Place", "Travel"),
	card("ctx_disney", "遊園地", types.CardNoun, 2, "Place", "Date", "Fun"),
	card("ctx_shopping", "買い物", types.CardNoun, 2, "Action", "Date", "Shop"),
}

// Cards is the full card database used for balanced draws and topic
// injection.
var Cards = buildDatabase()

func buildDatabase() []types.Card {
	db := make([]types.Card, 0, len(ResponseCards)+len(ContextNouns)+80)
	db = append(db, ResponseCards...)
	db = append(db, ContextNouns...)
	db = append(db,
		card("pn1", "私", types.CardNoun, 1, "Person", "Self"),
		card("pn2", "僕", types.CardNoun, 1, "Person", "Self"),
		card("pn4", "あなた", types.CardNoun, 1, "Person", "Partner"),
		card("pn5", "君", types.CardNoun, 1, "Person", "Partner"),
		card("sch1", "宿題", types.CardNoun, 1, "School", "Study", "Boring"),
		card("sch2", "テスト", types.CardNoun, 1, "School", "Study", "Scary"),
		card("sch3", "部活", types.CardNoun, 1, "School", "Activity", "Sport"),
		card("sch4", "先生", types.CardNoun, 1, "School", "Person"),
		card("sch5", "サボる", types.CardVerb, 2, "School", "Bad", "Action"),
		card("sch6", "保健室", types.CardNoun, 2, "School", "Place", "Secret"),
		card("sch7", "お弁当", types.CardNoun, 1, "School", "Food", "Lunch"),
		card("sch8", "購買", types.CardNoun, 1, "School", "Food"),
		card("sch9", "クラス", types.CardNoun, 1, "School"),
		card("sl1", "マジで", types.CardAdverb, 1, "Slang", "Emphasis"),
		card("sl2", "ヤバい", types.CardAdjective, 1, "Slang", "Emotion"),
		card("sl3", "ウケる", types.CardVerb, 1, "Slang", "Fun"),
		card("sl4", "ダルい", types.CardAdjective, 1, "Slang", "Negative", "Tired"),
		card("sl5", "眠い", types.CardAdjective, 1, "Emotion", "Tired", "Night", "Morning"),
		card("sl6", "お腹すいた", types.CardAdjective, 1, "Emotion", "Food"),
		card("sl7", "無理", types.CardAdjective, 1, "Negative", "Denial"),
		card("sl8", "最高", types.CardNoun, 1, "Positive", "Emotion"),
		card("sl9", "微妙", types.CardAdjective, 1, "Negative", "Uncertain"),
		card("act1", "行く", types.CardVerb, 1, "Action", "Move"),
		card("act2", "食べる", types.CardVerb, 1, "Action", "Food"),
		card("act3", "見る", types.CardVerb, 1, "Action"),
		card("act4", "遊ぶ", types.CardVerb, 1, "Action", "Fun", "Play"),
		card("act5", "話す", types.CardVerb, 1, "Action", "Communicate", "Talk"),
		card("act6", "帰る", types.CardVerb, 1, "Action", "Move", "Home"),
		card("act7", "待つ", types.CardVerb, 1, "Action", "Time"),
		card("act8", "貸して", types.CardVerb, 2, "Action", "Request"),
		card("act9", "教えて", types.CardVerb, 2, "Action", "Request", "Study"),
		card("v_think", "思う", types.CardVerb, 1, "Action", "Thought"),
		card("v_feel", "感じる", types.CardVerb, 1, "Action", "Feeling"),
		card("v_trust", "信じる", types.CardVerb, 2, "Action", "Trust"),
		card("v_promise", "約束する", types.CardVerb, 2, "Action", "Promise"),
		card("v_worry", "心配する", types.CardVerb, 2, "Action", "Care"),
		card("v_support", "応援する", types.CardVerb, 2, "Action", "Support"),
		card("v_know", "知ってる", types.CardVerb, 1, "Action", "Knowledge"),
		card("adj_happy", "嬉しい", types.CardAdjective, 1, "Emotion", "Positive"),
		card("adj_sad", "寂しい", types.CardAdjective, 1, "Emotion", "Negative"),
		card("adj_fun", "楽しい", types.CardAdjective, 1, "Emotion", "Positive"),
		card("adj_cute", "かわいい", types.CardAdjective, 1, "Description", "Positive"),
		card("adj_cool", "かっこいい", types.CardAdjective, 1, "Description", "Positive"),
		card("rom1", "好き", types.CardNoun, 3, "Emotion", "Love"),
		card("rom2", "気になってる", types.CardVerb, 3, "Emotion", "Love"),
		card("rom3", "デート", types.CardNoun, 2, "Event", "Love", "Date"),
		card("rom4", "手", types.CardNoun, 2, "Body", "Love"),
		card("rom5", "つなぐ", types.CardVerb, 2, "Action", "Love"),
		card("rom6", "抱きしめる", types.CardVerb, 3, "Action", "Love", "Deep"),
		card("rom7", "キス", types.CardNoun, 3, "Action", "Love", "Deep"),
		card("rom8", "ずっと", types.CardAdverb, 2, "Time", "Love"),
		card("rom9", "信じて", types.CardVerb, 2, "Emotion", "Trust"),
		card("tm1", "いつか", types.CardAdverb, 2, "Time", "Future"),
		card("tm2", "あの時", types.CardNoun, 2, "Time", "Past", "Memory"),
		card("tm3", "今度", types.CardNoun, 1, "Time", "Future", "Promise"),
		card("tm4", "これから", types.CardAdverb, 1, "Time", "Future"),
		card("tm5", "また", types.CardAdverb, 1, "Time", "Repeat"),
		card("tm6", "週末", types.CardNoun, 1, "Time", "Holiday"),
		card("tm7", "放課後", types.CardNoun, 1, "Time", "School"),
		card("prt1", "が", types.CardParticle, 1, "Grammar"),
		card("prt2", "を", types.CardParticle, 1, "Grammar"),
		card("prt3", "に", types.CardParticle, 1, "Grammar"),
		card("prt4", "と", types.CardParticle, 1, "Grammar"),
		card("prt5", "は", types.CardParticle, 1, "Grammar"),
		card("prt6", "の", types.CardParticle, 1, "Grammar"),
		card("prt7", "で", types.CardParticle, 1, "Grammar"),
		card("aux1", "したい", types.CardAuxVerb, 1, "Grammar", "Desire"),
		card("aux2", "だね", types.CardAuxVerb, 1, "Grammar", "Agreement"),
		card("aux3", "かな", types.CardAuxVerb, 1, "Grammar", "Question"),
		card("aux4", "です", types.CardAuxVerb, 1, "Grammar", "Polite"),
		card("aux5", "ない", types.CardAuxVerb, 1, "Grammar", "Negative"),
	)
	return db
}
