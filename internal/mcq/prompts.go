package mcq

const systemPrompt = `You are an experienced technical interviewer writing multiple-choice questions. Base every question strictly on the provided article. Be precise and factual. Do not invent details that are not present in the text.`

const questionPromptTemplate = `Read the following interview preparation article and write exactly %d multiple-choice questions that test understanding of its content.

Return a JSON array with exactly this shape:

[
  {
    "question": "The question text",
    "options": {
      "A": "first option",
      "B": "second option",
      "C": "third option",
      "D": "fourth option"
    },
    "correct_answer": "A"
  }
]

Rules:
- Every question has exactly four options keyed A through D.
- Exactly one option is correct; correct_answer is its letter.
- Wrong options must be plausible, not obviously absurd.
- Cover different parts of the article rather than one paragraph.

Article title: %s

%s`
