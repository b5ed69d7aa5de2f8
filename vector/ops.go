package vector

// Operator set generated into ops_gen.go. A directive names the operator
// family followed by its operand types; "mut" marks a pointer the operator
// may write through.

//vecop:add Vector, Vector
//vecop:add Vector, *Vector
//vecop:add Vector, mut *Vector
//vecop:add *Vector, Vector
//vecop:add *Vector, *Vector
//vecop:add *Vector, mut *Vector
//vecop:add mut *Vector, Vector
//vecop:add mut *Vector, *Vector
//vecop:add mut *Vector, mut *Vector

//vecop:dot Vector, Vector
//vecop:dot Vector, *Vector
//vecop:dot Vector, mut *Vector
//vecop:dot *Vector, Vector
//vecop:dot *Vector, *Vector
//vecop:dot *Vector, mut *Vector
//vecop:dot mut *Vector, Vector
//vecop:dot mut *Vector, *Vector
//vecop:dot mut *Vector, mut *Vector

//vecop:scale Vector
//vecop:scale *Vector
//vecop:scale mut *Vector
