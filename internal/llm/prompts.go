package llm

import "fmt"

const (
	refineSystemZH = "你是一個優秀的中文逐字稿修飾助手。"
	refineSystemEN = "You are an excellent transcript cleanup assistant. Add correct punctuation and remove filler words with minimal changes."

	summarySystemZH = "你是一位會議談話內容摘要助手。"
	summarySystemEN = "You are an assistant that summarizes meetings."

	filenameSystem = "You are an assistant that generates concise file names from transcripts."
)

const refinePromptZH = `請修飾下面的逐字稿：
- 盡量保留原意
- 去除贅字
- 加上正確的標點符號
- 修正常見錯字（例如：錯別字、同音字、口誤導致的打錯字）
---
%s
`

const refinePromptEN = `Please clean up the following transcript:
- Keep the original meaning
- Remove filler words
- Add correct punctuation
- Fix common typos and spelling errors
---
%s
`

const summaryPromptZH = `請根據下面的逐字稿，寫一段1000字以內的摘要，講述主要speaker最近的狀態與談話重點，請把人物名稱標注在內，用字自然，不要有開會的感覺，修正常見錯別字、類似音的字，繁體中文：

---
%s
`

const summaryPromptEN = `Summarize the main points of the following transcript in less than 1000 words. Include the names of the people mentioned, use natural language, and avoid a meeting-minutes tone:

---
%s
`

const filenamePromptZH = `根據下面的摘要，請給我一句話摘要，適合作為檔案名稱（盡量包含主題、重要事件或被speaker提到多次的名字），請保持在30個字以內，不要包含任何前綴，只需主題內容：
---
%s
`

const filenamePromptEN = `Based on the following summary, generate a short phrase (max 10 words) that would be suitable as a filename (preferably including the topic, key event, or participants). Do not include any prefixes, output only the topic:
---
%s
`

func refineRequest(model, lang, chunk string) Request {
	system, prompt := refineSystemEN, refinePromptEN
	if lang == "zh" {
		system, prompt = refineSystemZH, refinePromptZH
	}
	return Request{
		Model:       model,
		System:      system,
		Prompt:      fmt.Sprintf(prompt, chunk),
		Temperature: 0.2,
	}
}

func summaryRequest(model, lang, text string) Request {
	system, prompt := summarySystemEN, summaryPromptEN
	if lang == "zh" {
		system, prompt = summarySystemZH, summaryPromptZH
	}
	return Request{
		Model:       model,
		System:      system,
		Prompt:      fmt.Sprintf(prompt, text),
		Temperature: 0.2,
	}
}

func filenameRequest(model, lang, summary string) Request {
	prompt := filenamePromptEN
	if lang == "zh" {
		prompt = filenamePromptZH
	}
	return Request{
		Model:       model,
		System:      filenameSystem,
		Prompt:      fmt.Sprintf(prompt, summary),
		Temperature: 0.3,
	}
}
