// Package errors provides a comprehensive error handling solution for the rpg-damage project.
//
// This package is inspired by the goaterr pattern and provides:
//   - Structured errors with codes, messages, and metadata
//   - Seamless gRPC integration with bidirectional conversion
//   - User-friendly error messages
//   - Error context preservation through wrapping
//   - Validation error helpers
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.PresetNotFound("preset not found")
//	err := errors.InvalidInputf("invalid dice count: %d", count)
//
// Adding metadata:
//
//	err := errors.PresetNotFound("preset not found").
//	    WithMeta("preset_name", name).
//	    WithMeta("calculation_id", calcID)
//
// Wrapping errors:
//
//	if err := repo.GetByName(ctx, name); err != nil {
//	    return errors.Wrap(err, "failed to get preset")
//	}
//
// Changing error semantics:
//
//	if err := roller.RollN(count, faces); err != nil {
//	    return errors.WrapWithCode(err, errors.CodeDiceRollFailed, "dice roller failed")
//	}
//
// # Error Checking
//
// Type checking:
//
//	if errors.IsPresetNotFound(err) {
//	    // Handle missing preset case
//	}
//
// Extracting information:
//
//	code := errors.GetCode(err)
//	message := errors.GetMessage(err)
//	meta := errors.GetMeta(err)
//
// # Validation Errors
//
// Using the validation builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("damage_type", string(input.DamageType), vb)
//	errors.ValidateRange("dice_count", input.DiceCount, 1, 100, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # gRPC Integration
//
// Converting to gRPC:
//
//	func (s *Server) CalculateDamage(ctx context.Context, req *pb.CalculateDamageRequest) (*pb.DamageResult, error) {
//	    result, err := s.service.CalculateDamage(ctx, input)
//	    if err != nil {
//	        return nil, errors.ToGRPCError(err)
//	    }
//	    return result.ToProto(), nil
//	}
//
// Converting from gRPC:
//
//	result, err := client.CalculateDamage(ctx, req)
//	if err != nil {
//	    return nil, errors.FromGRPCError(err)
//	}
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return domain-specific errors (PresetNotFound)
//   - Include relevant names and keys in metadata
//   - Wrap storage errors with context
//
// Service/Orchestrator layer:
//   - Validate inputs and return InvalidInput errors
//   - Enforce caps and return LimitExceeded errors
//   - Wrap engine and repository errors with business context
//
// Command layer:
//   - Extract user-friendly messages for terminal output
//   - Map codes to process exit behavior
//
// # Error Codes
//
// The following error codes are available:
//   - InvalidInput: Invalid input provided
//   - LimitExceeded: Value outside enforced caps
//   - PresetNotFound: Named preset does not exist
//   - DiceRollFailed: Dice roller returned an error
//   - CalculationFailed: Calculation could not be completed
package errors
