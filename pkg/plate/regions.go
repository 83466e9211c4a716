package plate

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// DefaultRegions is the built-in catalog of place names issued on Japanese
// plates. Order matters: partial recovery takes the first entry contained in
// the text, so more specific names must come before substrings of themselves
// would (the list is consulted as-is, no sorting).
var DefaultRegions = []string{
	// Tokyo
	"品川", "練馬", "足立", "杉並", "世田谷", "江東", "葛飾", "江戸川", "板橋",
	"台東", "墨田", "荒川", "北", "豊島", "中野", "目黒", "大田", "港",
	"千代田", "中央", "文京", "新宿", "渋谷",
	// Kanto
	"横浜", "川崎", "相模", "湘南", "千葉", "習志野", "袖ケ浦", "野田",
	"水戸", "土浦", "つくば", "宇都宮", "とちぎ", "那須", "前橋", "高崎",
	// Kansai
	"大阪", "なにわ", "和泉", "堺", "神戸", "姫路", "京都", "奈良", "滋賀",
	// Chubu
	"名古屋", "尾張小牧", "一宮", "春日井", "豊田", "岡崎", "豊橋", "静岡", "浜松",
	"金沢", "富山", "福井", "長野", "松本", "諏訪", "山梨", "甲府",
	// elsewhere
	"札幌", "函館", "旭川", "釧路", "帯広", "仙台", "宮城", "福島", "郡山", "いわき",
	"新潟", "長岡", "福岡", "北九州", "筑豊", "久留米", "佐賀", "長崎", "熊本",
	"大分", "宮崎", "鹿児島", "沖縄", "広島", "福山", "岡山", "倉敷", "山口",
	"下関", "鳥取", "島根", "松江", "徳島", "香川", "高知", "愛媛", "松山",
}

// LoadRegionsFile reads a region catalog from a plain text file: one name
// per line, blank lines and lines starting with # are skipped. The returned
// order is the file order.
func LoadRegionsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open regions file: %w", err)
	}
	defer f.Close()
	var regions []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		regions = append(regions, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read regions file: %w", err)
	}
	if len(regions) == 0 {
		return nil, fmt.Errorf("regions file %s contains no entries", path)
	}
	return regions, nil
}
