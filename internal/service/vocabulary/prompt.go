package vocabulary

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/huayu-backend/internal/domain"
)

const wordListSchema = `{
  "type": "object",
  "properties": {
    "words": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "chinese": {"type": "string"},
          "pinyin": {"type": "string"},
          "zhuyin": {"type": "string"},
          "japanese": {"type": "string"},
          "category": {"type": "string"}
        },
        "required": ["chinese", "pinyin", "zhuyin", "japanese"]
      }
    }
  },
  "required": ["words"]
}`

var difficultyInstructions = map[domain.Difficulty]string{
	domain.DifficultyEasy:   "【超・初心者向け (HSK 1-2級)】。「水」「食べる」「これ」「行く」など、生活に必須の最も基本的で短い単語のみ。熟語は避けてください。",
	domain.DifficultyMiddle: "【中級者向け (HSK 3-4級)】。日常会話を豊かにするための表現。「節約」「誤解」「調整」「雰囲気」など、2文字以上の動詞・名詞・形容詞を中心にして、基礎単語は一切含めないでください。",
	domain.DifficultyHard:   "【上級者・ニュース向け (HSK 5-6級)】。新聞、ニュース、ビジネスで使われる硬い表現や四字熟語、抽象的な概念を選んでください。口語表現は避けてください。",
}

func buildPrompt(category string, difficulty domain.Difficulty, count int, exclude []string) string {
	return fmt.Sprintf(`「%s」というカテゴリに関連する中国語単語を%d個生成してください。
難易度指定: %s

**重要ルール**:
1. 中国語は**台湾繁体字**を使用してください。
2. **注音符号（Bopomofo）**を含めてください。
3. 以下の単語は**絶対に出力しないでください**（重複防止のため）:
   [%s]
4. 指定された難易度（%s）を厳密に守ってください。EASYとMIDDLEの差を明確にしてください。`,
		category, count, difficultyInstructions[difficulty], strings.Join(exclude, ", "), difficulty)
}
