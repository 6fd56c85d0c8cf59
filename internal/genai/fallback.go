package genai

import "math/rand"

// Built-in destinations served when the inspiration fetch fails, so the feed
// never comes up empty.
var fallbackPlaces = []DestinationDetails{
	{Name: "京都", Country: "日本", Description: "拥有古老寺庙和神社的千年古都。", BestTimeToVisit: "春季/秋季", ImageKeyword: "Kyoto"},
	{Name: "圣托里尼", Country: "希腊", Description: "爱琴海上的明珠，以白墙蓝顶建筑闻名。", BestTimeToVisit: "夏季", ImageKeyword: "Santorini"},
	{Name: "雷克雅未克", Country: "冰岛", Description: "探索极光和火山地貌的绝佳门户。", BestTimeToVisit: "冬季/夏季", ImageKeyword: "Reykjavik"},
	{Name: "皇后镇", Country: "新西兰", Description: "世界冒险之都，拥有壮丽的湖光山色。", BestTimeToVisit: "全年", ImageKeyword: "Queenstown"},
	{Name: "马丘比丘", Country: "秘鲁", Description: "失落的印加城市，壮观的山顶遗迹。", BestTimeToVisit: "旱季", ImageKeyword: "Machu Picchu"},
	{Name: "开普敦", Country: "南非", Description: "桌山脚下的港口城市，风景如画。", BestTimeToVisit: "春秋", ImageKeyword: "Cape Town"},
	{Name: "巴厘岛", Country: "印尼", Description: "神之岛，热带海滩与梯田风光。", BestTimeToVisit: "旱季", ImageKeyword: "Bali"},
	{Name: "班夫国家公园", Country: "加拿大", Description: "落基山脉的明珠，碧绿湖泊与雪山。", BestTimeToVisit: "夏季/冬季", ImageKeyword: "Banff"},
}

// Fallback returns up to n built-in destinations in random order.
func Fallback(n int) []DestinationDetails {
	out := make([]DestinationDetails, len(fallbackPlaces))
	copy(out, fallbackPlaces)
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}
