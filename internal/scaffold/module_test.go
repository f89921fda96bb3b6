package scaffold

import (
	"strings"
	"testing"
)

func TestModulePair(t *testing.T) {
	meta := baseMeta()
	ids := Derive(meta)

	header := ModuleHeader(meta, ids).Body
	for _, want := range []string{
		"DECLARE_LOG_CATEGORY_EXTERN(LogNebulaToolkit, Log, All);",
		"class FNebulaToolkitModule : public IModuleInterface",
		"virtual void StartupModule() override;",
		"virtual void ShutdownModule() override;",
	} {
		if !strings.Contains(header, want) {
			t.Errorf("header missing %q", want)
		}
	}
	if strings.Contains(header, "RegisterEditorUtilities") {
		t.Error("editor hook declared without the editor module flag")
	}

	source := ModuleSource(meta, ids).Body
	for _, want := range []string{
		"DEFINE_LOG_CATEGORY(LogNebulaToolkit);",
		`UE_LOG(LogNebulaToolkit, Log, TEXT("NebulaToolkit module started"));`,
		`UE_LOG(LogNebulaToolkit, Log, TEXT("NebulaToolkit module shut down"));`,
		"IMPLEMENT_MODULE(FNebulaToolkitModule, NebulaToolkit)",
	} {
		if !strings.Contains(source, want) {
			t.Errorf("source missing %q", want)
		}
	}
}

func TestModulePairEditorHook(t *testing.T) {
	meta := baseMeta()
	meta.EditorModule = true
	ids := Derive(meta)

	if !strings.Contains(ModuleHeader(meta, ids).Body, "void RegisterEditorUtilities();") {
		t.Error("editor hook not declared with the editor module flag set")
	}
	source := ModuleSource(meta, ids).Body
	if !strings.Contains(source, "FNebulaToolkitModule::RegisterEditorUtilities()") {
		t.Error("editor hook not defined with the editor module flag set")
	}
}

func TestEditorPairMenuGating(t *testing.T) {
	meta := baseMeta()
	meta.EditorModule = true
	ids := Derive(meta)

	// Menu flag off: no ToolMenus registration, but the viewport extension
	// hook is still registered and nothing is unregistered on shutdown.
	source := EditorSource(meta, ids).Body
	if strings.Contains(source, "UToolMenus") {
		t.Errorf("menu registration present without the menu flag:\n%s", source)
	}
	if !strings.Contains(source, "RegisterViewportExtension();") {
		t.Error("viewport extension registration missing")
	}

	meta.EditorMenu = true
	source = EditorSource(meta, ids).Body
	for _, want := range []string{
		"UToolMenus::RegisterStartupCallback",
		"UToolMenus::UnregisterOwner(this);",
		"FNebulaToolkitEditorModule::RegisterMenus()",
	} {
		if !strings.Contains(source, want) {
			t.Errorf("menu-enabled source missing %q", want)
		}
	}

	header := EditorHeader(meta, ids).Body
	if !strings.Contains(header, "void RegisterMenus();") {
		t.Error("menu hook missing from header with menu flag set")
	}
}

func TestAsyncPair(t *testing.T) {
	meta := baseMeta()
	meta.AsyncAction = true
	ids := Derive(meta)

	header := AsyncHeader(meta, ids).Body
	for _, want := range []string{
		"DECLARE_DYNAMIC_MULTICAST_DELEGATE_OneParam(FNebulaToolkitAsyncPin, float, Progress);",
		"class NEBULA_TOOLKIT_API UNebulaToolkitAsyncAction : public UBlueprintAsyncActionBase",
		"FNebulaToolkitAsyncPin OnProgress;",
		"FNebulaToolkitAsyncPin OnCompleted;",
		"static UNebulaToolkitAsyncAction* WaitForDuration(UObject* WorldContextObject, float Duration);",
		"virtual void Activate() override;",
	} {
		if !strings.Contains(header, want) {
			t.Errorf("async header missing %q", want)
		}
	}

	source := AsyncSource(meta, ids).Body
	for _, want := range []string{
		// Duration clamps to a strictly-positive minimum.
		"Action->Duration = FMath::Max(Duration, 0.01f);",
		// Invalid context completes immediately and disposes.
		"OnCompleted.Broadcast(1.0f);",
		"SetReadyToDestroy();",
		// Advance accumulates delta time and clamps progress.
		"Elapsed += World->GetDeltaSeconds();",
		"const float Progress = FMath::Clamp(Elapsed / Duration, 0.f, 1.f);",
		"OnProgress.Broadcast(Progress);",
		// Epsilon completion and next-tick rescheduling.
		"FMath::IsNearlyEqual(Progress, 1.f, KINDA_SMALL_NUMBER)",
		"SetTimerForNextTick(this, &UNebulaToolkitAsyncAction::Advance);",
	} {
		if !strings.Contains(source, want) {
			t.Errorf("async source missing %q", want)
		}
	}
}
