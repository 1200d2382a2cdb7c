// Package prompt provides the centralized prompt builder for all iteration
// controllers. It composes system messages, user messages, instruction
// hierarchies, and strategy-specific formatting.
package prompt

// analysisTask is the investigation task instruction appended to the user message.
const analysisTask = `## Your Task
Use the available tools to investigate this alert and provide:
1. Root cause analysis
2. Current system state assessment
3. Specific remediation steps for human operators
4. Prevention recommendations

Be thorough in your investigation before providing the final answer.`

// finalAnalysisTask is the task instruction for the tool-less final-analysis stage.
const finalAnalysisTask = `Provide your comprehensive final analysis of this alert based on the investigation data above.`

// reactFormatInstructions teaches the text-based investigation loop format.
// The parser in pkg/agent/controller depends on these exact section headers.
const reactFormatInstructions = `## Response Format

Answer using the following format:

Thought: reason about what you know so far and what to do next
Action: the tool to use, exactly one, in 'server.tool' format
Action Input: the input to the tool (JSON object, or key: value pairs)
Observation: the result of the action

... (Thought/Action/Action Input/Observation repeats until you have enough information)

Thought: I now know the final answer
Final Answer: your complete analysis and recommendations

CRITICAL RULES:
- NEVER write the Observation yourself. Stop after Action Input and wait — the system executes the tool and provides the Observation.
- Take exactly one Action at a time.
- The Action line must contain only the tool name in 'server.tool' format, nothing else.
- When you have gathered enough information, finish with 'Thought: I now know the final answer' followed by 'Final Answer:'.`

// continuationPrompt nudges the model when a response contains neither an
// Action nor a Final Answer. The "Please specify what Action" wording is
// recognized by the response parser so this system text is never mistaken
// for a model-written observation.
const continuationPrompt = `Observation: Error in reasoning - try again. Please specify what Action you want to take next (with Action Input), or provide your Final Answer if you already have enough information.`

// forcedConclusionTemplate is the base template for forced conclusion prompts.
// %d = iteration count, %s = format instructions.
const forcedConclusionTemplate = `You have reached the investigation iteration limit (%d iterations).

Please conclude your investigation by answering the original question based on what you've discovered.

**Conclusion guidance:**
- Use the data and observations you've already gathered
- Perfect information is not required - provide actionable insights from available findings
- If gaps remain, clearly state what you couldn't determine and why
- Clearly distinguish between conclusions supported by tool-gathered evidence and those based only on the original alert data
- If most tool calls failed, returned errors, or produced no meaningful data, explicitly state that your analysis is limited and primarily based on alert data
- Focus on practical next steps based on current knowledge

%s`

// reactForcedConclusionFormat closes a ReAct conversation without another tool call.
const reactForcedConclusionFormat = `Respond with 'Thought: I now know the final answer' followed by 'Final Answer:' and your structured conclusion. Do NOT take any further Action.`

// nativeForcedConclusionFormat closes a native tool-calling conversation.
const nativeForcedConclusionFormat = `Provide a clear, structured conclusion that directly addresses the investigation question. Do NOT call any further tools.`

// executiveSummarySystemPrompt is the system prompt for executive summary generation.
const executiveSummarySystemPrompt = `You are an expert Site Reliability Engineer assistant that creates concise 1-4 line executive summaries of incident analyses for alert notifications. Focus on clarity, brevity, and actionable information.`

// executiveSummaryUserTemplate is the user prompt for executive summary generation.
// %s = final analysis text.
const executiveSummaryUserTemplate = `Generate a 1-4 line executive summary of this incident analysis.

CRITICAL RULES:
- Only summarize what is EXPLICITLY stated in the analysis
- Do NOT infer future actions or recommendations not mentioned
- Do NOT add your own conclusions
- Focus on: what happened, current status, and ONLY stated next steps

Analysis to summarize:

=================================================================================
%s
=================================================================================

Executive Summary (1-4 lines, facts only):`
