package services

import "strings"

const intentInstructions = "You are an intent classifier for a personal finance chat assistant.\n" +
	"Classify the user's message into exactly one of these labels:\n" +
	"- new_transaction: the user reports money spent or received (e.g. \"gastei 50 no almoço\", \"received my salary\").\n" +
	"- query_transactions: the user asks about past transactions (totals, listings, \"quanto gastei hoje?\").\n" +
	"- unknown: anything else.\n" +
	"Respond with ONLY the label, no markdown, no punctuation, no extra text."

const extractionInstructions = "You are a transaction extractor for a personal finance assistant.\n" +
	"Extract the transaction described in the user's message.\n" +
	"Respond ONLY with a valid JSON object, no markdown and no extra text.\n" +
	"Expected format:\n" +
	"{\n" +
	"  \"kind\": \"income\" or \"expense\",\n" +
	"  \"amount\": number,\n" +
	"  \"description\": \"short description\",\n" +
	"  \"category\": \"category name\"\n" +
	"}\n" +
	"Rules:\n" +
	"- kind = 'expense' for money spent, 'income' for money received.\n" +
	"- amount is the numeric value only, no currency symbol.\n" +
	"- description is a short phrase taken from the message, in its language.\n" +
	"- category is your best single-word-or-two label (e.g. \"Food\", \"Transport\", \"Salary\")."

const plannerInstructionsPrefix = "You are a query analyst for a personal finance database.\n"

const plannerInstructionsBody = "Your task is to turn the user's question into a structured JSON query.\n" +
	"Respond ONLY with a valid JSON object, no markdown and no extra text.\n" +
	"Expected format:\n" +
	"{\n" +
	"  \"aggregation\": \"sum\" or \"list\",\n" +
	"  \"filters\": {\n" +
	"    \"date_start\": \"YYYY-MM-DD\",\n" +
	"    \"date_end\": \"YYYY-MM-DD\",\n" +
	"    \"kind\": \"income\" or \"expense\",\n" +
	"    \"category\": \"category name\"\n" +
	"  },\n" +
	"  \"limit\": number (optional)\n" +
	"}\n" +
	"Rules:\n" +
	"- aggregation = 'sum' for total/how much questions, 'list' for listing or showing transactions.\n" +
	"- Omit any filter key the question does not mention.\n" +
	"- Use YYYY-MM-DD dates. Resolve relative periods (today, this month) to absolute dates.\n" +
	"Examples:\n" +
	"Message: \"quanto gastei hoje?\" -> {\"aggregation\": \"sum\", \"filters\": {\"kind\": \"expense\", \"date_start\": \"<today>\", \"date_end\": \"<today>\"}}\n" +
	"Message: \"últimas 3 transações\" -> {\"aggregation\": \"list\", \"filters\": {}, \"limit\": 3}"

// plannerInstructions injects the current date, so the model can resolve
// relative phrases like "today" and "this month" to absolute dates.
func plannerInstructions(today string) string {
	return plannerInstructionsPrefix +
		"Today's date is " + today + ".\n" +
		strings.ReplaceAll(plannerInstructionsBody, "<today>", today)
}

// cleanModelJSON strips Markdown code fences and surrounding whitespace that
// models sometimes emit despite instructions.
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			s = strings.TrimPrefix(s, "```json")
			s = strings.TrimPrefix(s, "```")
		}
		s = strings.TrimSpace(s)
	}

	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}

	return strings.TrimSpace(s)
}
