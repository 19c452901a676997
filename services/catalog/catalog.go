package catalog

import "akanuke/models"

// Curated home-screen content. IDs are stable within this source set;
// favorite and history dedup key off them.

// PickupItems returns the editor-picked items for the home view.
func PickupItems() []models.FashionItem {
	return []models.FashionItem{
		{
			ID:          "pickup-1",
			Brand:       "GU",
			Name:        "ヘビーウェイトビッグT(5分袖)",
			Price:       "¥1,990",
			ImageURL:    ImageURL("white heavyweight t-shirt men fashion studio minimal"),
			SearchQuery: "GU ヘビーウェイトビッグT",
		},
		{
			ID:          "pickup-2",
			Brand:       "UNIQLO",
			Name:        "タックワイドパンツ",
			Price:       "¥3,990",
			ImageURL:    ImageURL("grey wide trousers men fashion studio"),
			SearchQuery: "UNIQLO タックワイドパンツ",
		},
		{
			ID:          "pickup-3",
			Brand:       "ZARA",
			Name:        "チャンキーソールスニーカー",
			Price:       "¥5,990",
			ImageURL:    ImageURL("chunky white sneakers men studio"),
			SearchQuery: "ZARA メンズ スニーカー",
		},
	}
}

// RankingItems returns the weekly ranking for the home view.
func RankingItems() []models.FashionItem {
	return []models.FashionItem{
		{
			ID:          "rank-1",
			Brand:       "THE NORTH FACE",
			Name:        "バーサタイルショーツ",
			Price:       "¥6,800",
			ImageURL:    ImageURL("north face shorts men black outdoor"),
			SearchQuery: "ノースフェイス バーサタイルショーツ",
		},
		{
			ID:          "rank-2",
			Brand:       "NIKE",
			Name:        "エアフォース1 '07",
			Price:       "¥12,100",
			ImageURL:    ImageURL("nike air force 1 white sneakers"),
			SearchQuery: "NIKE エアフォース1",
		},
		{
			ID:          "rank-3",
			Brand:       "Champion",
			Name:        "リバースウィーブ Tシャツ",
			Price:       "¥4,500",
			ImageURL:    ImageURL("champion grey t-shirt men logo"),
			SearchQuery: "Champion Tシャツ メンズ",
		},
	}
}
