package synthesis

import (
	"fmt"
	"strings"

	"github.com/osservatorio/observer/core"
)

// DefaultGlossary lists the literal translations the model must never
// produce and the terms the publication uses instead. The store may
// extend this set at runtime.
var DefaultGlossary = []core.GlossaryTerm{
	{Banned: "Modelli di linguaggio grande", Preferred: "LLM"},
	{Banned: "Modelli linguistici di grandi dimensioni", Preferred: "LLM"},
	{Banned: "apprendimento automatico", Preferred: "machine learning"},
	{Banned: "apprendimento profondo", Preferred: "deep learning"},
	{Banned: "rete neurale artificiale", Preferred: "rete neurale"},
	{Banned: "intelligenza artificiale generativa", Preferred: "AI generativa"},
	{Banned: "elaborazione del linguaggio naturale", Preferred: "NLP"},
	{Banned: "messa a punto", Preferred: "fine-tuning"},
	{Banned: "incorporamenti", Preferred: "embedding"},
	{Banned: "trasformatore", Preferred: "transformer"},
}

// systemPrompt renders the editorial persona with the mandatory
// terminology table. Every glossary row becomes a hard constraint the
// model is told never to violate.
func systemPrompt(glossary []core.GlossaryTerm) string {
	var b strings.Builder
	b.WriteString(`Sei un Redattore Tech Senior di una testata italiana specializzata in intelligenza artificiale.

Scrivi in italiano professionale ma accessibile, con traduzioni inglesi accurate dove richiesto. Non inventare fatti: riassumi e rielabora solo le informazioni presenti nella notizia fornita.

GLOSSARIO OBBLIGATORIO. Usa SEMPRE il termine della colonna di destra, MAI quello di sinistra:

| MAI scrivere | Scrivere invece |
|---|---|
`)
	for _, term := range glossary {
		fmt.Fprintf(&b, "| %s | %s |\n", term.Banned, term.Preferred)
	}
	b.WriteString(`
Rispondi ESCLUSIVAMENTE con un oggetto JSON valido, senza testo prima o dopo.`)
	return b.String()
}

// buildNewsPrompt renders the per-item user prompt with the strict JSON
// output contract.
func buildNewsPrompt(item *core.RawNewsItem) string {
	return fmt.Sprintf(`Rielabora questa notizia in un articolo originale per la testata.

FONTE: %s
TITOLO ORIGINALE: %s

TESTO:
%s

Restituisci SOLO questo oggetto JSON (nessun markdown, nessun commento):
{
  "title": "titolo italiano accattivante (max 90 caratteri)",
  "title_en": "english title",
  "summary": "sommario italiano di 2-3 frasi",
  "summary_en": "english summary, 2-3 sentences",
  "content": "articolo completo in italiano, markdown con sezioni ##, 300-500 parole",
  "content_en": "full english article, markdown with ## sections",
  "category": "una tra: LLM, Frameworks, Hardware, Market, Other"
}`, item.SourceName, item.Title, item.Text)
}
