package deck

import (
	"math/rand"
	"strconv"
)

// HandSize 开局每人摸到的手牌数。
const HandSize = 13

// uniqueChars 144 字库：全部牌的固定全集，每局洗出其一个排列。
var uniqueChars = [...]string{
	"我", "你", "他", "她", "它", "们", "是", "不", "了", "在", "有", "和", "去", "好", "这", "那",
	"的", "地", "得", "着", "过", "爱", "想", "说", "看", "听", "写", "做", "打", "开", "关", "心",
	"人", "生", "活", "死", "光", "暗", "风", "花", "雪", "月", "春", "夏", "秋", "冬", "天", "日",
	"星", "辰", "山", "海", "红", "黄", "蓝", "白", "黑", "绿", "色", "空", "梦", "魂", "灵", "神",
	"鬼", "怪", "家", "城", "路", "远", "近", "高", "低", "大", "小", "多", "少", "美", "丑", "真",
	"假", "善", "恶", "喜", "怒", "哀", "乐", "酸", "甜", "苦", "辣", "醉", "醒", "迷", "悟", "离",
	"合", "聚", "散", "知", "识", "岁", "流", "年", "古", "今", "未", "来", "希", "望", "绝", "对",
	"可", "能", "因", "为", "但", "如", "果", "只", "要", "就", "才", "会", "快", "慢", "冷", "热",
	"痛", "痒", "麻", "疯", "狂", "笑", "哭", "喊", "叫", "沉", "默", "孤", "独", "自", "由", "夜",
}

// BotNames 机器人名字池。
var BotNames = []string{"阿法狗", "深蓝", "人工智障", "ChatGPT", "Sora"}

// Size 字库大小。
func Size() int {
	return len(uniqueChars)
}

// Chars 返回字库的一份拷贝，顺序为定义顺序。
func Chars() []string {
	out := make([]string, len(uniqueChars))
	copy(out, uniqueChars[:])
	return out
}

// New 返回一副洗好的新牌。Fisher-Yates 原地洗牌，从末尾向前，
// 与不大于当前下标的随机位置交换，得到无偏排列。
func New(randGen *rand.Rand) []string {
	d := Chars()
	for i := len(d) - 1; i > 0; i-- {
		j := randGen.Intn(i + 1)
		d[i], d[j] = d[j], d[i]
	}
	return d
}

// BotName 从名字池随机取名，并以座位号做后缀保证唯一。
func BotName(randGen *rand.Rand, seat int) string {
	return BotNames[randGen.Intn(len(BotNames))] + strconv.Itoa(seat)
}
