package sqlinline

const QPing = `--sql 207174c4-d264-4985-802b-5eac72b7a549
select 1;
`
