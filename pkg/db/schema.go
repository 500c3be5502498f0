package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Documents: one row per input file, keyed by content hash
CREATE TABLE IF NOT EXISTS documents (
    document_id INTEGER PRIMARY KEY AUTOINCREMENT,
    path TEXT NOT NULL,
    content_hash TEXT NOT NULL UNIQUE,
    kind TEXT NOT NULL,              -- text, markdown, html
    size_bytes INTEGER DEFAULT 0,
    doc_type TEXT,                   -- employment_document, insurance_document, ...
    type_score INTEGER DEFAULT 0,
    language TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_documents_path ON documents(path);
CREATE INDEX IF NOT EXISTS idx_documents_type ON documents(doc_type);

-- Document metadata: namespaced key-value storage per document
CREATE TABLE IF NOT EXISTS document_metadata (
    metadata_id INTEGER PRIMARY KEY AUTOINCREMENT,
    document_id INTEGER NOT NULL,
    namespace TEXT NOT NULL,
    key TEXT NOT NULL,
    value TEXT NOT NULL,
    FOREIGN KEY (document_id) REFERENCES documents(document_id) ON DELETE CASCADE,
    UNIQUE(document_id, namespace, key)
);

CREATE INDEX IF NOT EXISTS idx_doc_metadata_document ON document_metadata(document_id);
CREATE INDEX IF NOT EXISTS idx_doc_metadata_namespace ON document_metadata(namespace);

-- Runs: one row per extract invocation
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    document_count INTEGER NOT NULL,
    success_count INTEGER DEFAULT 0,
    failed_count INTEGER DEFAULT 0,
    fields TEXT,                     -- comma-joined requested field names
    output_dir TEXT NOT NULL,
    top_keywords TEXT                -- JSON array of "word:count" strings
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);

-- Run documents: junction table mapping runs to documents
CREATE TABLE IF NOT EXISTS run_documents (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id INTEGER NOT NULL,
    document_id INTEGER NOT NULL,
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE,
    FOREIGN KEY (document_id) REFERENCES documents(document_id) ON DELETE CASCADE,
    UNIQUE(run_id, document_id)
);

CREATE INDEX IF NOT EXISTS idx_run_documents_run ON run_documents(run_id);
CREATE INDEX IF NOT EXISTS idx_run_documents_document ON run_documents(document_id);

-- Run results: per-document outcome within a run
CREATE TABLE IF NOT EXISTS run_results (
    result_id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id INTEGER NOT NULL,
    document_id INTEGER NOT NULL,
    status TEXT NOT NULL,            -- success, failed
    error_message TEXT,
    confidence REAL DEFAULT 0,
    overall_score REAL DEFAULT 0,
    grade TEXT,
    manual_review BOOLEAN DEFAULT 0,
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE,
    FOREIGN KEY (document_id) REFERENCES documents(document_id),
    UNIQUE(run_id, document_id)
);

CREATE INDEX IF NOT EXISTS idx_run_results_run ON run_results(run_id);
CREATE INDEX IF NOT EXISTS idx_run_results_review ON run_results(manual_review) WHERE manual_review = 1;

-- Field values: every extracted field for a run/document pair
CREATE TABLE IF NOT EXISTS field_values (
    value_id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id INTEGER NOT NULL,
    document_id INTEGER NOT NULL,
    field_name TEXT NOT NULL,
    value TEXT,
    found BOOLEAN NOT NULL,
    source TEXT,                     -- strategy, contextual
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE,
    FOREIGN KEY (document_id) REFERENCES documents(document_id) ON DELETE CASCADE,
    UNIQUE(run_id, document_id, field_name)
);

CREATE INDEX IF NOT EXISTS idx_field_values_run ON field_values(run_id);
CREATE INDEX IF NOT EXISTS idx_field_values_document ON field_values(document_id);
CREATE INDEX IF NOT EXISTS idx_field_values_name ON field_values(field_name);
`
