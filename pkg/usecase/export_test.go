package usecase

// Dispatch is exported for testing
var Dispatch = (*AssistantUseCase).dispatch
