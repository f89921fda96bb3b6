package scaffold

import (
	"fmt"
	"strings"
)

// minAsyncDuration is the floor the factory clamps caller durations to.
// A zero or negative duration would make the progress ratio divide by zero
// or complete before the first tick.
const minAsyncDuration = "0.01f"

// AsyncHeader generates the async action header: a blueprint async action
// with progress and completion pins and a duration-based factory.
func AsyncHeader(meta PluginMetadata, ids Derived) Artifact {
	var b strings.Builder

	b.WriteString("#pragma once\n\n")
	b.WriteString("#include \"CoreMinimal.h\"\n")
	b.WriteString("#include \"Kismet/BlueprintAsyncActionBase.h\"\n")
	fmt.Fprintf(&b, "#include \"%sAsyncAction.generated.h\"\n\n", ids.ModuleName)

	fmt.Fprintf(&b, "DECLARE_DYNAMIC_MULTICAST_DELEGATE_OneParam(%s, float, Progress);\n\n", ids.AsyncDelegate)

	b.WriteString("UCLASS()\n")
	fmt.Fprintf(&b, "class %s %s : public UBlueprintAsyncActionBase\n", ids.APIMacro, ids.AsyncClass)
	b.WriteString("{\n\tGENERATED_BODY()\n\npublic:\n")

	b.WriteString("\t/** Fired every tick with progress in [0, 1]. */\n")
	b.WriteString("\tUPROPERTY(BlueprintAssignable)\n")
	fmt.Fprintf(&b, "\t%s OnProgress;\n\n", ids.AsyncDelegate)

	b.WriteString("\t/** Fired once when the wait completes. */\n")
	b.WriteString("\tUPROPERTY(BlueprintAssignable)\n")
	fmt.Fprintf(&b, "\t%s OnCompleted;\n\n", ids.AsyncDelegate)

	b.WriteString("\t/** Starts a timed wait tied to the calling world. */\n")
	fmt.Fprintf(&b, "\tUFUNCTION(BlueprintCallable, Category = %q, meta = (WorldContext = %q, BlueprintInternalUseOnly = \"true\"))\n",
		asyncCategory(meta), WorldContextName)
	fmt.Fprintf(&b, "\tstatic %s* WaitForDuration(%s %s, float Duration);\n\n",
		ids.AsyncClass, WorldContextType, WorldContextName)

	b.WriteString("\tvirtual void Activate() override;\n\n")
	b.WriteString("private:\n")
	b.WriteString("\tvoid Advance();\n\n")
	b.WriteString("\tUPROPERTY()\n")
	b.WriteString("\tTObjectPtr<UObject> ContextObject = nullptr;\n\n")
	b.WriteString("\tfloat Duration = 0.f;\n")
	b.WriteString("\tfloat Elapsed = 0.f;\n")
	b.WriteString("};\n")

	return Artifact{
		Title:    "Async Action Header",
		Path:     fmt.Sprintf("Source/%s/Public/%sAsyncAction.h", ids.ModuleName, ids.ModuleName),
		Language: LangCPP,
		Body:     b.String(),
	}
}

// AsyncSource generates the async action implementation: the two-stage
// completion protocol. Activation with an invalid world completes
// immediately at 1.0 and marks the action for disposal; otherwise the action
// re-arms a next-tick advance that accumulates the world's delta seconds,
// broadcasts clamped progress, and completes once within epsilon of 1.0.
func AsyncSource(meta PluginMetadata, ids Derived) Artifact {
	var b strings.Builder

	fmt.Fprintf(&b, "#include \"%sAsyncAction.h\"\n\n", ids.ModuleName)
	b.WriteString("#include \"Engine/Engine.h\"\n")
	b.WriteString("#include \"Engine/World.h\"\n")
	b.WriteString("#include \"TimerManager.h\"\n\n")

	fmt.Fprintf(&b, "%s* %s::WaitForDuration(%s %s, float Duration)\n{\n",
		ids.AsyncClass, ids.AsyncClass, WorldContextType, WorldContextName)
	fmt.Fprintf(&b, "\t%s* Action = NewObject<%s>();\n", ids.AsyncClass, ids.AsyncClass)
	fmt.Fprintf(&b, "\tAction->ContextObject = %s;\n", WorldContextName)
	fmt.Fprintf(&b, "\tAction->Duration = FMath::Max(Duration, %s);\n", minAsyncDuration)
	b.WriteString("\treturn Action;\n}\n\n")

	fmt.Fprintf(&b, "void %s::Activate()\n{\n", ids.AsyncClass)
	writeWorldGuard(&b, ids)
	fmt.Fprintf(&b, "\tWorld->GetTimerManager().SetTimerForNextTick(this, &%s::Advance);\n}\n\n", ids.AsyncClass)

	fmt.Fprintf(&b, "void %s::Advance()\n{\n", ids.AsyncClass)
	writeWorldGuard(&b, ids)
	b.WriteString("\tElapsed += World->GetDeltaSeconds();\n")
	b.WriteString("\tconst float Progress = FMath::Clamp(Elapsed / Duration, 0.f, 1.f);\n")
	b.WriteString("\tOnProgress.Broadcast(Progress);\n\n")
	b.WriteString("\tif (FMath::IsNearlyEqual(Progress, 1.f, KINDA_SMALL_NUMBER))\n\t{\n")
	b.WriteString("\t\tOnCompleted.Broadcast(1.f);\n")
	b.WriteString("\t\tSetReadyToDestroy();\n")
	b.WriteString("\t\treturn;\n\t}\n\n")
	fmt.Fprintf(&b, "\tWorld->GetTimerManager().SetTimerForNextTick(this, &%s::Advance);\n}\n", ids.AsyncClass)

	return Artifact{
		Title:    "Async Action Source",
		Path:     fmt.Sprintf("Source/%s/Private/%sAsyncAction.cpp", ids.ModuleName, ids.ModuleName),
		Language: LangCPP,
		Body:     b.String(),
	}
}

// writeWorldGuard emits the shared resolve-world-or-complete block used by
// both Activate and Advance.
func writeWorldGuard(b *strings.Builder, ids Derived) {
	b.WriteString("\tUWorld* World = GEngine ? GEngine->GetWorldFromContextObject(ContextObject, EGetWorldErrorMode::LogAndReturnNull) : nullptr;\n")
	b.WriteString("\tif (!World)\n\t{\n")
	b.WriteString("\t\tOnCompleted.Broadcast(1.0f);\n")
	b.WriteString("\t\tSetReadyToDestroy();\n")
	b.WriteString("\t\treturn;\n\t}\n\n")
}

// asyncCategory mirrors the Category tag used on library endpoints.
func asyncCategory(meta PluginMetadata) string {
	name := strings.TrimSpace(meta.FriendlyName)
	if name == "" {
		return "Plugin"
	}
	return name
}
