package config

import "testing"

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "DB_PATH", "INIT_MODE", "AI_PROVIDER",
		"GEMINI_API_KEY", "GEMINI_MODEL",
		"ARK_API_KEY", "ARK_ACCESS_KEY", "ARK_SECRET_KEY", "ARK_MODEL",
		"ARK_TEMPERATURE", "ARK_TOP_P", "ARK_MAX_TOKENS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}

	if cfg.Server.Addr != ":5000" {
		t.Fatalf("unexpected addr: %q", cfg.Server.Addr)
	}
	if cfg.Storage.Path != "mindease.db" {
		t.Fatalf("unexpected db path: %q", cfg.Storage.Path)
	}
	if cfg.Storage.InitMode != InitModeEager || cfg.Storage.LazyInit() {
		t.Fatalf("expected eager init default, got %q", cfg.Storage.InitMode)
	}
	if cfg.AI.Provider != ProviderGemini {
		t.Fatalf("unexpected provider: %q", cfg.AI.Provider)
	}
	if cfg.AI.GeminiModel != "gemini-2.5-flash" {
		t.Fatalf("unexpected model: %q", cfg.AI.GeminiModel)
	}
	if cfg.AI.Enabled() {
		t.Fatal("expected AI disabled without credentials")
	}
}

func TestLoadPortForms(t *testing.T) {
	clearEnv(t)

	t.Setenv("PORT", "9000")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.Server.Addr != ":9000" {
		t.Fatalf("unexpected addr: %q", cfg.Server.Addr)
	}

	t.Setenv("PORT", "127.0.0.1:7000")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.Server.Addr != "127.0.0.1:7000" {
		t.Fatalf("unexpected addr: %q", cfg.Server.Addr)
	}

	t.Setenv("PORT", "90 00")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed PORT")
	}
}

func TestLoadInitMode(t *testing.T) {
	clearEnv(t)

	t.Setenv("INIT_MODE", "lazy")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if !cfg.Storage.LazyInit() {
		t.Fatal("expected lazy init mode")
	}

	t.Setenv("INIT_MODE", "sometimes")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown INIT_MODE")
	}
}

func TestLoadInvalidProvider(t *testing.T) {
	clearEnv(t)

	t.Setenv("AI_PROVIDER", "openai")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown AI_PROVIDER")
	}
}

func TestAIConfigEnabled(t *testing.T) {
	clearEnv(t)

	t.Setenv("GEMINI_API_KEY", "test-key")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if !cfg.AI.Enabled() {
		t.Fatal("expected gemini provider enabled with key")
	}

	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("AI_PROVIDER", "ark")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.AI.Enabled() {
		t.Fatal("expected ark provider disabled without credentials")
	}

	t.Setenv("ARK_API_KEY", "ak")
	t.Setenv("ARK_MODEL", "doubao-pro")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if !cfg.AI.Enabled() {
		t.Fatal("expected ark provider enabled with key and model")
	}
}

func TestLoadArkNumericOverrides(t *testing.T) {
	clearEnv(t)

	t.Setenv("ARK_TEMPERATURE", "0.7")
	t.Setenv("ARK_MAX_TOKENS", "512")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.AI.Ark.Temperature == nil || *cfg.AI.Ark.Temperature != 0.7 {
		t.Fatalf("unexpected temperature: %+v", cfg.AI.Ark.Temperature)
	}
	if cfg.AI.Ark.MaxTokens == nil || *cfg.AI.Ark.MaxTokens != 512 {
		t.Fatalf("unexpected max tokens: %+v", cfg.AI.Ark.MaxTokens)
	}

	t.Setenv("ARK_TEMPERATURE", "warm")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed ARK_TEMPERATURE")
	}
}
