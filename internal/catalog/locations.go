package catalog

import "github.com/kotonoha/days/internal/types"

// bgComposition is appended to every background prompt so generated
// scenes share a consistent visual-novel camera setup.
const bgComposition = ", visual novel background art, static camera angle, perfectly horizontal horizon, vanishing point at top 30% of image (high horizon line), wide angle lens, spacious foreground floor (40% of image), empty scene, no humans, anime style, Makoto Shinkai style, highly detailed, 8k"

// LocationOrder lists every location in catalog order. Month-window
// rotation on the map screen depends on this order staying stable.
var LocationOrder = []types.LocationID{
	types.LocClassroom, types.LocRooftop, types.LocCorridor, types.LocStation,
	types.LocPark, types.LocLibrary, types.LocGym, types.LocBeach,
	types.LocShrine, types.LocCafe, types.LocMall, types.LocPool,
	types.LocAmusementPark, types.LocKaraoke, types.LocArcade,
	types.LocConvenienceStore, types.LocBookstore, types.LocFastFood,
	types.LocRiverbank, types.LocAquarium,
}

// FixedLocations are always offered regardless of month.
var FixedLocations = []types.LocationID{types.LocClassroom, types.LocCorridor}

// IndoorLocations and OutdoorLocations feed the spawn affinity weight.
var (
	IndoorLocations = []types.LocationID{
		types.LocClassroom, types.LocCorridor, types.LocStation,
		types.LocLibrary, types.LocCafe, types.LocMall,
	}
	OutdoorLocations = []types.LocationID{
		types.LocRooftop, types.LocPark, types.LocBeach,
		types.LocGym, types.LocPool, types.LocAmusementPark,
	}
)

// LocationTags maps a location to the topic tags injected into the
// opening hand drawn there.
var LocationTags = map[types.LocationID][]string{
	types.LocClassroom:        {"School", "Study", "Talk"},
	types.LocRooftop:          {"Sky", "Talk", "Skip"},
	types.LocCorridor:         {"School", "Talk", "Move"},
	types.LocStation:          {"City", "Shop", "Travel"},
	types.LocPark:             {"Nature", "Play", "Relax"},
	types.LocLibrary:          {"Book", "Study", "Quiet"},
	types.LocGym:              {"Sport", "Action", "Sweat"},
	types.LocCafe:             {"Food", "Drink", "Sweet", "Date"},
	types.LocMall:             {"Shop", "Date", "Fashion", "Play"},
	types.LocPool:             {"Water", "Summer", "Swim", "Date"},
	types.LocAmusementPark:    {"Fun", "Date", "Play", "Scream"},
	types.LocBeach:            {"Sea", "Summer", "Nature", "Travel"},
	types.LocShrine:           {"Pray", "Tradition", "Wish", "Quiet"},
	types.LocKaraoke:          {"Music", "Sing", "Play", "Loud"},
	types.LocArcade:           {"Game", "Play", "Fun", "Noise"},
	types.LocConvenienceStore: {"Food", "Buy", "Late", "Snack"},
	types.LocBookstore:        {"Book", "Quiet", "Culture", "Shop"},
	types.LocFastFood:         {"Food", "Cheap", "Talk", "Date"},
	types.LocRiverbank:        {"Nature", "Walk", "Sunset", "Talk"},
	types.LocAquarium:         {"Fish", "Date", "Quiet", "Blue"},
}

// Locations holds every visitable place keyed by id.
var Locations = map[types.LocationID]types.Location{
	types.LocClassroom: {
		ID: types.LocClassroom, Name: "教室", BGMTheme: "calm",
		Prompt:           "High school classroom interior, desks and chairs arranged in rows, chalkboard, sunlight streaming through windows" + bgComposition,
		FallbackImageURL: "assets/bg/bg_classroom.png",
	},
	types.LocRooftop: {
		ID: types.LocRooftop, Name: "屋上", BGMTheme: "happy",
		Prompt:           "School rooftop, chain link fence, blue sky with large clouds, concrete floor" + bgComposition,
		FallbackImageURL: "assets/bg/bg_rooftop.png",
	},
	types.LocCorridor: {
		ID: types.LocCorridor, Name: "廊下", BGMTheme: "calm",
		Prompt:           "High school corridor, lockers lining the wall, polished floor reflecting light" + bgComposition,
		FallbackImageURL: "assets/bg/bg_corridor.png",
	},
	types.LocStation: {
		ID: types.LocStation, Name: "駅前", BGMTheme: "happy",
		Prompt:           "Train station square, fountain in the center, city buildings in background, paved ground" + bgComposition,
		FallbackImageURL: "assets/bg/bg_station.png",
	},
	types.LocPark: {
		ID: types.LocPark, Name: "公園", BGMTheme: "happy",
		Prompt:           "Spacious public park, jungle gym, clock tower, green trees, dirt ground" + bgComposition,
		FallbackImageURL: "assets/bg/bg_park.png",
	},
	types.LocLibrary: {
		ID: types.LocLibrary, Name: "図書室", BGMTheme: "calm",
		Prompt:           "Quiet library interior, tall bookshelves filled with books, wooden tables" + bgComposition,
		FallbackImageURL: "assets/bg/bg_library.png",
	},
	types.LocGym: {
		ID: types.LocGym, Name: "体育館", BGMTheme: "happy",
		Prompt:           "School gymnasium interior, basketball hoop, polished wooden floor" + bgComposition,
		FallbackImageURL: "assets/bg/bg_gym.png",
	},
	types.LocCafe: {
		ID: types.LocCafe, Name: "カフェ", BGMTheme: "calm",
		AvailableMonths:  []int{4, 5, 6, 9, 10, 11, 12, 1, 2, 3},
		Prompt:           "Stylish cafe interior, wooden tables and chairs, coffee counter" + bgComposition,
		FallbackImageURL: "assets/bg/bg_cafe.png",
	},
	types.LocMall: {
		ID: types.LocMall, Name: "モール", BGMTheme: "happy",
		AvailableMonths:  []int{5, 6, 7, 8, 12, 1},
		Prompt:           "Inside a shopping mall, atrium, glass windows, bright lights, tiled floor" + bgComposition,
		FallbackImageURL: "assets/bg/bg_mall.png",
	},
	types.LocPool: {
		ID: types.LocPool, Name: "プール", BGMTheme: "happy",
		AvailableMonths:  []int{6, 7, 8, 9},
		Prompt:           "School swimming pool, sparkling blue water, poolside tiles" + bgComposition,
		FallbackImageURL: "assets/bg/bg_pool.png",
	},
	types.LocAmusementPark: {
		ID: types.LocAmusementPark, Name: "遊園地", BGMTheme: "happy",
		AvailableMonths:  []int{5, 8, 10, 11, 12, 3},
		Prompt:           "Amusement park, ferris wheel in background, paved path" + bgComposition,
		FallbackImageURL: "assets/bg/bg_amusement_park.png",
	},
	types.LocBeach: {
		ID: types.LocBeach, Name: "海", BGMTheme: "happy",
		AvailableMonths:  []int{7, 8},
		Prompt:           "Sandy beach, ocean horizon, blue sea, summer clouds" + bgComposition,
		FallbackImageURL: "assets/bg/bg_beach.png",
	},
	types.LocShrine: {
		ID: types.LocShrine, Name: "神社", BGMTheme: "calm",
		AvailableMonths:  []int{1, 12},
		Prompt:           "Japanese shinto shrine, torii gate, stone steps" + bgComposition,
		FallbackImageURL: "assets/bg/bg_shrine.png",
	},
	types.LocKaraoke: {
		ID: types.LocKaraoke, Name: "カラオケ", BGMTheme: "happy",
		AvailableMonths:  []int{4, 5, 6, 7, 8, 9, 10, 11, 12, 1, 2, 3},
		Prompt:           "Karaoke box room, monitor screen, sofa, table with drinks" + bgComposition,
		FallbackImageURL: "assets/bg/bg_karaoke.png",
	},
	types.LocArcade: {
		ID: types.LocArcade, Name: "ゲーセン", BGMTheme: "tense",
		AvailableMonths:  []int{4, 5, 6, 7, 8, 9, 10, 11, 12, 1, 2, 3},
		Prompt:           "Game arcade interior, neon lights, colorful carpet" + bgComposition,
		FallbackImageURL: "assets/bg/bg_arcade.png",
	},
	types.LocConvenienceStore: {
		ID: types.LocConvenienceStore, Name: "コンビニ", BGMTheme: "calm",
		AvailableMonths:  []int{4, 5, 6, 7, 8, 9, 10, 11, 12, 1, 2, 3},
		Prompt:           "Convenience store front, lit sign, night time, parking lot" + bgComposition,
		FallbackImageURL: "assets/bg/bg_convenience_store.png",
	},
	types.LocBookstore: {
		ID: types.LocBookstore, Name: "本屋", BGMTheme: "calm",
		AvailableMonths:  []int{4, 5, 6, 9, 10, 11, 1, 2},
		Prompt:           "Bookstore interior, shelves of magazines and manga, wooden floor" + bgComposition,
		FallbackImageURL: "assets/bg/bg_bookstore.png",
	},
	types.LocFastFood: {
		ID: types.LocFastFood, Name: "バーガー店", BGMTheme: "happy",
		AvailableMonths:  []int{4, 5, 6, 7, 8, 9, 10, 11, 12, 1, 2, 3},
		Prompt:           "Fast food restaurant interior, tables and booth seats, bright lighting" + bgComposition,
		FallbackImageURL: "assets/bg/bg_fast_food.png",
	},
	types.LocRiverbank: {
		ID: types.LocRiverbank, Name: "河川敷", BGMTheme: "melancholy",
		AvailableMonths:  []int{4, 5, 6, 9, 10},
		Prompt:           "Grassy riverbank, sunset, river reflecting sky, slope" + bgComposition,
		FallbackImageURL: "assets/bg/bg_riverbank.png",
	},
	types.LocAquarium: {
		ID: types.LocAquarium, Name: "水族館", BGMTheme: "calm",
		AvailableMonths:  []int{7, 8, 12, 2, 3},
		Prompt:           "Aquarium tunnel, blue water tank, fish swimming, dim blue lighting" + bgComposition,
		FallbackImageURL: "assets/bg/bg_aquarium.png",
	},
}

// Events is the fixed school-year sequence, one event per month in
// narrative order.
var Events = []types.SchoolEvent{
	{ID: "evt_april", Month: 4, Title: "一学期 始業式", Description: "新しい学年の始まり。桜が舞う季節。"},
	{ID: "evt_may", Month: 5, Title: "中間テスト", Description: "勉強も恋も忙しい時期。"},
	{ID: "evt_june", Month: 6, Title: "衣替え・梅雨", Description: "雨の日の相合傘チャンス。"},
	{ID: "evt_july", Month: 7, Title: "期末テスト", Description: "夏休み前の最後の試練。"},
	{ID: "evt_august", Month: 8, Title: "夏休み", Description: "海、祭り、花火大会。思い出作りの季節。"},
	{ID: "evt_sept", Month: 9, Title: "二学期 始業式", Description: "日焼けした笑顔に再会。"},
	{ID: "evt_oct", Month: 10, Title: "文化祭", Description: "クラスの出し物や後夜祭のダンス。"},
	{ID: "evt_nov", Month: 11, Title: "修学旅行", Description: "非日常の中で深まる絆。"},
	{ID: "evt_dec", Month: 12, Title: "クリスマス", Description: "冬休み前の特別な夜。"},
	{ID: "evt_jan", Month: 1, Title: "三学期 始業式", Description: "最後の学期の始まり。"},
	{ID: "evt_feb", Month: 2, Title: "バレンタイン", Description: "想いを伝える日。"},
	{ID: "evt_march", Month: 3, Title: "卒業式", Description: "別れと旅立ち、そして告白の時。"},
}
