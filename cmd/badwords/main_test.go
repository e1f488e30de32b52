package main

import (
	"bytes"
	"errors"
	"hash/fnv"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"badwords/internal/badwords"
	"badwords/internal/config"
	"badwords/internal/testsupport"
	"badwords/internal/tokenizer"
)

type cliTestEnv struct {
	dir        string
	configPath string
	loads      []tokenizer.Options
	loadErr    error
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()
	t.Setenv("BADWORDS_TOKENIZER", "")
	t.Setenv("BADWORDS_TOKENIZER_BACKEND", "")
	dir := t.TempDir()
	return &cliTestEnv{
		dir:        dir,
		configPath: filepath.Join(dir, "absent-config.toml"),
	}
}

func (e *cliTestEnv) path(name string) string {
	return filepath.Join(e.dir, name)
}

func (e *cliTestEnv) write(t *testing.T, name, content string) string {
	t.Helper()
	return testsupport.WriteFile(t, e.path(name), content)
}

// hashTokenizer maps each distinct string to a one-element sequence.
func hashTokenizer(text string) ([]int, error) {
	h := fnv.New32a()
	_, _ = h.Write([]byte(text))
	return []int{int(h.Sum32())}, nil
}

func (e *cliTestEnv) loader(opts tokenizer.Options, _ *slog.Logger) (tokenizer.Tokenizer, error) {
	e.loads = append(e.loads, opts)
	if e.loadErr != nil {
		return nil, e.loadErr
	}
	return tokenizer.Func(hashTokenizer), nil
}

func (e *cliTestEnv) run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	ctx := newCommandContext()
	ctx.loadTokenizer = e.loader
	cmd := buildRootCommand(ctx)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", e.configPath}, args...))
	err := cmd.Execute()
	return stdout.String(), err
}

func readOutput(t *testing.T, path string) badwords.File {
	t.Helper()
	f, err := badwords.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	return f
}

func assertExitCode(t *testing.T, err error, want int) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected exit code %d, got success", want)
	}
	if got := exitCodeFor(err); got != want {
		t.Fatalf("exit code = %d, want %d (err %v)", got, want, err)
	}
}

func assertNotExist(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected %s not to exist, stat err=%v", path, err)
	}
}

func TestMergeWritesConcatenation(t *testing.T) {
	env := setupCLITestEnv(t)
	a := env.write(t, "a.badwords", `{"bad_words_ids":[[1,2]]}`)
	b := env.write(t, "b.badwords", `{"bad_words_ids":[[3]]}`)
	out := env.path("merged.badwords")

	stdout, err := env.run(t, "", "--merge", a, b, "--filename", out)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `{"bad_words_ids":[[1,2],[3]]}` {
		t.Fatalf("unexpected merged output %s", got)
	}
	if !strings.Contains(stdout, "Merged 2 files") {
		t.Fatalf("unexpected stdout %q", stdout)
	}
}

func TestMergeDefaultsToOutputBadwords(t *testing.T) {
	env := setupCLITestEnv(t)
	a := env.write(t, "a.badwords", `{"bad_words_ids":[[1]]}`)
	b := env.write(t, "b.badwords", `{"bad_words_ids":[[2]]}`)
	t.Chdir(env.dir)

	if _, err := env.run(t, "", "--merge", a, b); err != nil {
		t.Fatalf("merge: %v", err)
	}
	f := readOutput(t, env.path("output.badwords"))
	if diff := cmp.Diff([]badwords.Sequence{{1}, {2}}, f.BadWordsIDs); diff != "" {
		t.Fatalf("merged mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeNeedsTwoOpenableFiles(t *testing.T) {
	env := setupCLITestEnv(t)
	a := env.write(t, "a.badwords", `{"bad_words_ids":[[1]]}`)
	out := env.path("merged.badwords")

	_, err := env.run(t, "", "--merge", a, env.path("missing.badwords"), "--filename", out)
	assertExitCode(t, err, exitNotEnoughFiles)
	if !errors.Is(err, errNotEnoughFiles) {
		t.Fatalf("expected errNotEnoughFiles, got %v", err)
	}
	assertNotExist(t, out)
}

func TestMergeDeclinedPromptLeavesTargetUntouched(t *testing.T) {
	env := setupCLITestEnv(t)
	a := env.write(t, "a.badwords", `{"bad_words_ids":[[1]]}`)
	b := env.write(t, "b.badwords", `{"bad_words_ids":[[2]]}`)
	out := env.write(t, "merged.badwords", "previous")
	missing := env.path("missing.badwords")

	stdout, err := env.run(t, "no\n", "--merge", a, missing, b, "--filename", out)
	assertExitCode(t, err, exitDeclined)

	for _, want := range []string{
		missing + " can't be opened",
		"remaining files: (" + a + "," + b + ")",
		"Do you want to process only the remaining files ? (yes/y|N/no/No) : ",
	} {
		if !strings.Contains(stdout, want) {
			t.Fatalf("stdout %q missing %q", stdout, want)
		}
	}
	got, _ := os.ReadFile(out)
	if string(got) != "previous" {
		t.Fatalf("declined run modified output: %q", got)
	}
}

func TestMergeAcceptedPromptUsesRemainingFiles(t *testing.T) {
	env := setupCLITestEnv(t)
	a := env.write(t, "a.badwords", `{"bad_words_ids":[[1]]}`)
	b := env.write(t, "b.badwords", `{"bad_words_ids":[[2]]}`)
	out := env.path("merged.badwords")

	if _, err := env.run(t, "maybe\ny\n", "--merge", a, env.path("missing"), b, "--filename", out); err != nil {
		t.Fatalf("merge: %v", err)
	}
	f := readOutput(t, out)
	if diff := cmp.Diff([]badwords.Sequence{{1}, {2}}, f.BadWordsIDs); diff != "" {
		t.Fatalf("merged mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeYesFlagSkipsPrompt(t *testing.T) {
	env := setupCLITestEnv(t)
	a := env.write(t, "a.badwords", `{"bad_words_ids":[[1]]}`)
	b := env.write(t, "b.badwords", `{"bad_words_ids":[[2]]}`)
	out := env.path("merged.badwords")

	stdout, err := env.run(t, "", "--merge", "--yes", a, env.path("missing"), b, "--filename", out)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if strings.Contains(stdout, "(yes/y|N/no/No)") {
		t.Fatalf("prompt shown despite --yes: %q", stdout)
	}
	if f := readOutput(t, out); len(f.BadWordsIDs) != 2 {
		t.Fatalf("unexpected merged output: %v", f.BadWordsIDs)
	}
}

func TestMergeMalformedInputFails(t *testing.T) {
	env := setupCLITestEnv(t)
	a := env.write(t, "a.badwords", `{"bad_words_ids":[[1]]}`)
	b := env.write(t, "b.badwords", `{"ids":[[2]]}`)
	out := env.path("merged.badwords")

	_, err := env.run(t, "", "--merge", a, b, "--filename", out)
	if !errors.Is(err, badwords.ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
	assertExitCode(t, err, exitFailure)
	assertNotExist(t, out)
}

func TestBothModesIsAConflict(t *testing.T) {
	env := setupCLITestEnv(t)
	a := env.write(t, "a.badwords", `{"bad_words_ids":[[1]]}`)
	b := env.write(t, "b.badwords", `{"bad_words_ids":[[2]]}`)
	out := env.path("out.badwords")

	_, err := env.run(t, "", "--merge", "--create_from_file", a, b, "--filename", out)
	assertExitCode(t, err, exitUsage)
	if !errors.Is(err, errModeConflict) {
		t.Fatalf("expected errModeConflict, got %v", err)
	}
	assertNotExist(t, out)
	if len(env.loads) != 0 {
		t.Fatal("tokenizer loaded despite mode conflict")
	}
}

func TestNoModePrintsUsage(t *testing.T) {
	env := setupCLITestEnv(t)

	stdout, err := env.run(t, "", "words.txt")
	assertExitCode(t, err, exitUsage)
	if err.Error() != "" {
		t.Fatalf("expected silent exit, got %q", err)
	}
	if !strings.Contains(stdout, "--create_from_file") || !strings.Contains(stdout, "--merge") {
		t.Fatalf("usage not printed: %q", stdout)
	}
}

func TestModeWithoutFilesIsUsageError(t *testing.T) {
	env := setupCLITestEnv(t)
	_, err := env.run(t, "", "--merge")
	assertExitCode(t, err, exitUsage)
}

func TestUnknownFlagIsUsageError(t *testing.T) {
	env := setupCLITestEnv(t)
	_, err := env.run(t, "", "--mrege", "a", "b")
	assertExitCode(t, err, exitUsage)
}

func TestCreateFromSingleLineFile(t *testing.T) {
	env := setupCLITestEnv(t)
	words := env.write(t, "words.txt", "cat\n")
	out := env.path("cat.badwords")

	stdout, err := env.run(t, "", "--create_from_file", words, "--filename", out)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	f := readOutput(t, out)
	if len(f.BadWordsIDs) != badwords.VariantCount {
		t.Fatalf("expected %d sequences, got %v", badwords.VariantCount, f.BadWordsIDs)
	}
	seen := map[int]bool{}
	for _, seq := range f.BadWordsIDs {
		if len(seq) != 1 || seen[seq[0]] {
			t.Fatalf("expected distinct single-element sequences, got %v", f.BadWordsIDs)
		}
		seen[seq[0]] = true
	}
	for i, variant := range badwords.Variants("cat") {
		want, _ := hashTokenizer(variant)
		if f.BadWordsIDs[i][0] != want[0] {
			t.Fatalf("sequence %d does not encode %q", i, variant)
		}
	}
	if !strings.Contains(stdout, "Wrote 6 token sequences for 1 words") {
		t.Fatalf("unexpected stdout %q", stdout)
	}
	if diff := cmp.Diff([]tokenizer.Options{{Backend: config.TokenizerGPT2, Name: "gpt2"}}, env.loads); diff != "" {
		t.Fatalf("tokenizer options mismatch (-want +got):\n%s", diff)
	}
}

func TestCreateDeduplicatesAcrossFilesWithEscapedSeparator(t *testing.T) {
	env := setupCLITestEnv(t)
	first := env.write(t, "first.txt", "cat\tcat")
	second := env.write(t, "second.txt", "Cat")
	out := env.path("out.badwords")

	if _, err := env.run(t, "", "--create_from_file", first, second, "--separator", `\t`, "--filename", out); err != nil {
		t.Fatalf("create: %v", err)
	}
	if f := readOutput(t, out); len(f.BadWordsIDs) != 2*badwords.VariantCount {
		t.Fatalf("expected %d sequences, got %d", 2*badwords.VariantCount, len(f.BadWordsIDs))
	}
}

func TestCreateDeclinedDoesNotLoadTokenizer(t *testing.T) {
	env := setupCLITestEnv(t)
	words := env.write(t, "words.txt", "cat")
	out := env.path("out.badwords")

	_, err := env.run(t, "N\n", "--create_from_file", words, env.path("missing.txt"), "--filename", out)
	assertExitCode(t, err, exitDeclined)
	assertNotExist(t, out)
	if len(env.loads) != 0 {
		t.Fatal("tokenizer loaded after the user declined")
	}
}

func TestCreateWithNoReadableFiles(t *testing.T) {
	env := setupCLITestEnv(t)
	out := env.path("out.badwords")

	_, err := env.run(t, "", "--create_from_file", env.path("missing.txt"), "--filename", out)
	assertExitCode(t, err, exitNotEnoughFiles)
	assertNotExist(t, out)
}

func TestCreateTokenizerFlagsOverrideConfig(t *testing.T) {
	env := setupCLITestEnv(t)
	words := env.write(t, "words.txt", "cat")
	out := env.path("out.badwords")

	if _, err := env.run(t, "", "--create_from_file", words, "--filename", out, "--tokenizer-backend", "tiktoken"); err != nil {
		t.Fatalf("create: %v", err)
	}
	want := []tokenizer.Options{{Backend: config.TokenizerTiktoken, Name: "r50k_base"}}
	if diff := cmp.Diff(want, env.loads); diff != "" {
		t.Fatalf("tokenizer options mismatch (-want +got):\n%s", diff)
	}
}

func TestCreateHuggingFaceWithoutPathIsUsageError(t *testing.T) {
	env := setupCLITestEnv(t)
	words := env.write(t, "words.txt", "cat")

	_, err := env.run(t, "", "--create_from_file", words, "--tokenizer-backend", "huggingface")
	assertExitCode(t, err, exitUsage)
	if len(env.loads) != 0 {
		t.Fatal("tokenizer loaded with invalid settings")
	}
}

func TestCreateTokenizerLoadFailure(t *testing.T) {
	env := setupCLITestEnv(t)
	env.loadErr = errors.New("vocab missing")
	words := env.write(t, "words.txt", "cat")
	out := env.path("out.badwords")

	_, err := env.run(t, "", "--create_from_file", words, "--filename", out)
	if err == nil || !strings.Contains(err.Error(), "vocab missing") {
		t.Fatalf("expected load error, got %v", err)
	}
	assertNotExist(t, out)
}

func TestConfigFileSuppliesDefaults(t *testing.T) {
	env := setupCLITestEnv(t)
	cfg := testsupport.NewConfig(t,
		testsupport.WithSeparator(","),
		testsupport.WithTokenizer(config.TokenizerTiktoken, "cl100k_base"),
	)
	env.configPath = testsupport.WriteConfig(t, cfg)
	words := testsupport.WriteWordList(t, env.path("words.txt"), ",", "cat", "dog")

	if _, err := env.run(t, "", "--create_from_file", words); err != nil {
		t.Fatalf("create: %v", err)
	}
	if f := readOutput(t, cfg.Output.Filename); len(f.BadWordsIDs) != 2*badwords.VariantCount {
		t.Fatalf("expected %d sequences, got %d", 2*badwords.VariantCount, len(f.BadWordsIDs))
	}
	want := []tokenizer.Options{{Backend: config.TokenizerTiktoken, Name: "cl100k_base"}}
	if diff := cmp.Diff(want, env.loads); diff != "" {
		t.Fatalf("tokenizer options mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeTreatsUnreadableFileAsBad(t *testing.T) {
	env := setupCLITestEnv(t)
	a := testsupport.WriteBadWords(t, env.path("a.badwords"), []int{1})
	b := testsupport.WriteBadWords(t, env.path("b.badwords"), []int{2})
	locked := testsupport.WriteBadWords(t, env.path("locked.badwords"), []int{3})
	testsupport.MakeUnreadable(t, locked)
	out := env.path("merged.badwords")

	stdout, err := env.run(t, "yes\n", "--merge", a, locked, b, "--filename", out)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if !strings.Contains(stdout, locked+" can't be opened") {
		t.Fatalf("unreadable file not reported: %q", stdout)
	}
	if diff := cmp.Diff([]badwords.Sequence{{1}, {2}}, readOutput(t, out).BadWordsIDs); diff != "" {
		t.Fatalf("merged mismatch (-want +got):\n%s", diff)
	}
}

func TestInspectRendersTable(t *testing.T) {
	env := setupCLITestEnv(t)
	a := env.write(t, "a.badwords", `{"bad_words_ids":[[1,2,3],[4]]}`)
	b := env.write(t, "b.badwords", `{"bad_words_ids":[[5]]}`)

	stdout, err := env.run(t, "", "inspect", a, b)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	lower := strings.ToLower(stdout)
	for _, want := range []string{"sequences", "longest", "a.badwords", "b.badwords", "total"} {
		if !strings.Contains(lower, want) {
			t.Fatalf("inspect output missing %q:\n%s", want, stdout)
		}
	}
}

func TestInspectRejectsMalformedFile(t *testing.T) {
	env := setupCLITestEnv(t)
	bad := env.write(t, "bad.badwords", `not json`)

	if _, err := env.run(t, "", "inspect", bad); err == nil {
		t.Fatal("expected error for malformed file")
	}
}

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t)
	target := env.path("conf/badwords.toml")

	stdout, err := env.run(t, "", "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(stdout, "Wrote sample configuration") {
		t.Fatalf("unexpected init output %q", stdout)
	}
	if _, err := env.run(t, "", "config", "init", "--path", target); err == nil {
		t.Fatal("expected init to refuse overwriting")
	}

	env.configPath = target
	stdout, err = env.run(t, "", "config", "validate")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	if !strings.Contains(stdout, "Configuration valid") || !strings.Contains(stdout, "Tokenizer: gpt2") {
		t.Fatalf("unexpected validate output %q", stdout)
	}
}

func TestExitCodeForPlainErrors(t *testing.T) {
	if got := exitCodeFor(errors.New("boom")); got != exitFailure {
		t.Fatalf("exitCodeFor(plain) = %d, want %d", got, exitFailure)
	}
	wrapped := withExitCode(exitDeclined, errDeclined)
	if !errors.Is(wrapped, errDeclined) {
		t.Fatal("exitError should unwrap to its cause")
	}
}

func TestConfigValidateCheck(t *testing.T) {
	env := setupCLITestEnv(t)
	cfg := testsupport.NewConfig(t)
	env.configPath = testsupport.WriteConfig(t, cfg)

	stdout, err := env.run(t, "", "config", "validate", "--check")
	if err != nil {
		t.Fatalf("config validate --check: %v\n%s", err, stdout)
	}
	if !strings.Contains(stdout, "Output directory") || !strings.Contains(stdout, "Configuration valid") {
		t.Fatalf("unexpected check output %q", stdout)
	}
	if len(env.loads) != 1 {
		t.Fatalf("expected one tokenizer load, got %d", len(env.loads))
	}

	env.loadErr = errors.New("vocab missing")
	stdout, err = env.run(t, "", "config", "validate", "--check")
	if err == nil {
		t.Fatal("expected failing check to fail the command")
	}
	if !strings.Contains(stdout, "FAIL") || strings.Contains(stdout, "Configuration valid") {
		t.Fatalf("unexpected check output %q", stdout)
	}
}

func TestCreateBackendFlagDropsConfiguredName(t *testing.T) {
	env := setupCLITestEnv(t)
	cfg := testsupport.NewConfig(t, testsupport.WithTokenizer(config.TokenizerTiktoken, "r50k_base"))
	env.configPath = testsupport.WriteConfig(t, cfg)
	words := env.write(t, "words.txt", "cat")

	if _, err := env.run(t, "", "--create_from_file", words, "--tokenizer-backend", "gpt2"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := env.run(t, "", "--create_from_file", words, "--tokenizer-backend", "gpt2", "--tokenizer", "pile"); err != nil {
		t.Fatalf("create with explicit name: %v", err)
	}
	want := []tokenizer.Options{
		{Backend: config.TokenizerGPT2, Name: "gpt2"},
		{Backend: config.TokenizerGPT2, Name: "pile"},
	}
	if diff := cmp.Diff(want, env.loads); diff != "" {
		t.Fatalf("tokenizer options mismatch (-want +got):\n%s", diff)
	}
}
