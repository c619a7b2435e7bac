package nutrition

const estimatorSystemPrompt = `You are a culinary nutrition expert. Estimate calories and macros for dishes.`

const estimatorInstructions = `Estimate the approximate calories and PFC (protein, fat, carbohydrate)
for each of the following dishes, plus a grand total.
- When the amount is unknown, assume a standard serving for the stated size (small/normal/large).

Dishes:
%s

Use exactly this output format:
<dish name>: <n> kcal, protein <n> g, fat <n> g, carbs <n> g
...
Total: <n> kcal, protein <n> g, fat <n> g, carbs <n> g`
