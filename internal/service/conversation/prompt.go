package conversation

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/huayu-backend/internal/domain"
)

const greetingRequest = "会話を始めましょう。短い挨拶をしてください。"

const analysisLabel = "分析結果"

func tutorInstruction(topic string) string {
	return fmt.Sprintf(`あなたは親切で可愛らしい中国語の家庭教師です。
ユーザー（日本人）と「%s」というテーマで会話練習をしてください。

ルール:
1. **台湾の繁体字中国語（Traditional Chinese, Taiwan）**で返答してください。
2. 返答のすぐ後に、カッコ書きで日本語訳をつけてください。 (例: 你好！ (こんにちは！))
3. 相手のレベルに合わせて、優しく、励ますように話してください。
4. 周杰倫（ジェイ・チョウ）のようなクールで優しい口調を少し意識してください。`, topic)
}

func analyzeDisplayText(sentence string) string {
	return "「" + sentence + "」\n(この文をチェックしてください)"
}

const hintSchema = `{
  "type": "object",
  "properties": {
    "hints": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "chinese": {"type": "string"},
          "japanese": {"type": "string"}
        },
        "required": ["chinese", "japanese"]
      }
    }
  },
  "required": ["hints"]
}`

func hintPrompt(display []domain.ChatMessage, topic string) string {
	lines := make([]string, len(display))
	for i, m := range display {
		lines[i] = string(m.Role) + ": " + m.Text
	}
	return fmt.Sprintf(`現在の会話の履歴:
%s

テーマ: %s

ユーザーが次に言うべき自然な中国語（台湾繁体字）のフレーズを3つ提案してください。
日本語の訳もつけてください。`, strings.Join(lines, "\n"), topic)
}

const analysisSchema = `{
  "type": "object",
  "properties": {
    "isValid": {"type": "boolean"},
    "correction": {"type": ["string", "null"]},
    "meaning": {"type": "string"},
    "pronunciation": {"type": "string"},
    "breakdown": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "word": {"type": "string"},
          "bopomofo": {"type": "string"},
          "meaning": {"type": "string"}
        },
        "required": ["word"]
      }
    },
    "explanation": {"type": "string"}
  },
  "required": ["isValid", "meaning", "pronunciation", "breakdown", "explanation"]
}`

func analysisPrompt(sentence string) string {
	return fmt.Sprintf(`ユーザーが入力した中国語の文章「%s」を分析してください。
台湾の繁体字と注音符号（Bopomofo）を基準にします。

以下の情報をJSONで返してください：
1. isValid: 文法的に自然で正しいかどうか (true/false)
2. correction: もし不自然なら、より自然な台湾華語の表現（なければnull）
3. meaning: 日本語の意味
4. pronunciation: 全体の注音符号
5. breakdown: 各単語ごとの分解（単語、注音、意味）
6. explanation: 文法や使い方のポイントを日本語で詳しく解説（ジェイ・チョウ風の口調で）`, sentence)
}
