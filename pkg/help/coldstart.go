package help

const ColdstartYAML = `# docfield Quick Start

input_types:
  txt: "Plain text, used as-is"
  md: "Markdown; bold labels like **Name:** still match"
  html: "Main content distilled, tables read as label/value rows"

commands:
  basic_extract: |
    docfield extract --files "offer.txt" --fields "name,ssn,salary"

  directory_extract: |
    docfield extract --dir ./documents --fields "policy_number,amount" --format yaml

  custom_fields: |
    docfield extract --files "invoice.txt" --fields "invoice_number" --fields-file fields.yaml

  list_runs: |
    docfield db runs

  run_details: |
    docfield db run 5

  document_fields: |
    docfield db show 12

  known_fields: |
    docfield fields

notes:
  - "Fields not in the built-in set fall back to label matching (e.g. 'Department: Engineering')"
  - "Confidence is found fields / requested fields; quality grades add format validation"
  - "Fresh results are reused within --max-age; pass --force to re-extract"
`
