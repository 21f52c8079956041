package completion

import "fmt"

const promptTemplate = `You are a helpful assistant. Reply to the message below in the same language it is written in. Keep the answer clear and to the point.

Message:
%s`

func buildPrompt(text string) string {
	return fmt.Sprintf(promptTemplate, text)
}
